package staff

// Staff es un miembro del personal de la clínica (veterinario, recepción, etc.).
type Staff struct {
	ID    int64
	Name  string
	Role  string
	Email string
	Phone string
}
