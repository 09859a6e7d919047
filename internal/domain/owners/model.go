package owners

// Owner es el tutor responsable de una o más mascotas.
type Owner struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
