package entity

import (
	"time"

	"github.com/google/uuid"
)

// Party represents an invoice counterpart for data transfer between layers.
type Party struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	TaxID     string    `json:"tax_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
