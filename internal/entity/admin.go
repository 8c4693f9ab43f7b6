package entity

// Admin is a console operator allowed to log in to the gateway.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    int64
}
