package treatments

import (
	"time"

	"vet-clinic/internal/domain/medications"
)

// Treatment es un tratamiento indicado por un profesional. Se asocia a
// mascotas vía pet_treatments (se cargan desde el lado de la mascota).
type Treatment struct {
	ID          int64
	Date        *time.Time
	Description string
	StaffID     *int64

	// Solo lectura, se completan al listar.
	Medications []medications.Medication
	Pets        []PetRef
}

// PetRef es la vista mínima de una mascota asociada.
type PetRef struct {
	ID   int64
	Name string
}
