package pets

import "time"

// Pet representa el perfil de una mascota registrada en la clínica.
type Pet struct {
	ID      int64
	OwnerID int64

	Name    string
	Species string // texto libre: "Dog", "Cat", "Bird"...
	Breed   string
	Sex     string
	Color   string

	DOB *time.Time

	MedicalNotes string

	// Filas de pet_treatments de esta mascota, en orden de alta.
	Treatments []TreatmentLink
}

// TreatmentLink es una fila de pet_treatments vista desde la mascota.
// La identidad es (pet, treatment); el store impide pares repetidos.
type TreatmentLink struct {
	TreatmentID int64

	// Solo lectura: sale de treatments.description.
	Description string

	TreatmentDate time.Time
	Notes         string
}

// ListFilter: campos vacíos/nil no filtran. Igualdad exacta (case-sensitive).
type ListFilter struct {
	Species string
	Breed   string
	Sex     string
	OwnerID *int64
}
