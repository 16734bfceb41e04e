package domain

// User is the single account the password flow manages.
type User struct {
	ID    string
	Name  string
	Email string
}
