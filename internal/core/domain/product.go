package domain

import "time"

// Product is a catalog item. Price is carried as a decimal string so the
// value round-trips exactly as the client sent it ("15.50" stays "15.50").
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
