package models

import "time"

// Resource defines the shareable resource model based on the 'resources' table.
// The embedding is computed once when the resource is added and never
// recomputed; IsAvailable flips to false exactly once, on the transaction
// that consumes the resource.
type Resource struct {
	ID          int64         `json:"id" db:"id" example:"1"`
	Type        ResourceType  `json:"type" db:"type" example:"book" enums:"book,notes,hardware"`
	Name        string        `json:"name" db:"name" example:"Intro to Algorithms"`
	Description string        `json:"description" db:"description" example:"CLRS copy, third edition"`
	OwnerID     int64         `json:"ownerId" db:"owner_id" example:"1"`
	Status      ListingStatus `json:"status" db:"status" example:"lending" enums:"lending,giveaway"`
	Cost        float64       `json:"cost" db:"cost" example:"0"`
	Embedding   []float64     `json:"-" db:"embedding"` // stored as BYTEA, never exposed over the API
	IsAvailable bool          `json:"isAvailable" db:"is_available" example:"true"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`

	// Owner contact, populated on joined reads
	OwnerName  string `json:"ownerName,omitempty" db:"owner_name"`
	OwnerEmail string `json:"ownerEmail,omitempty" db:"owner_email"`
}

// EmbeddingText composes the text the embedding is derived from
func (r *Resource) EmbeddingText() string {
	return string(r.Type) + " " + r.Name + " " + r.Description
}

// Match pairs a resource with its similarity to a search query
type Match struct {
	Resource   *Resource `json:"resource"`
	Similarity float64   `json:"similarity" example:"0.87"`
}
