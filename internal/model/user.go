package model

// User is the domain model for one dashboard record.
// The collection is replaced wholesale on every fetch; individual
// records are never mutated.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
