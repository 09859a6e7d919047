package medications

// Medication cuelga de un tratamiento (opcional).
type Medication struct {
	ID          int64
	Name        string
	Dosage      string
	Frequency   string
	TreatmentID *int64
}
