package domain

// User is the authenticated identity attached to every cart/order operation.
// Credentials are verified upstream; this core only consumes the result.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
