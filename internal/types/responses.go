package types

// UserResponse is the subset of a user record safe to return to clients.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
