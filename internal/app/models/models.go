package models

// ResourceType defines the category of a shareable resource
type ResourceType string

// Resource type constants
const (
	ResourceTypeBook     ResourceType = "book"
	ResourceTypeNotes    ResourceType = "notes"
	ResourceTypeHardware ResourceType = "hardware"
)

// Valid reports whether the resource type is one of the known categories
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeBook, ResourceTypeNotes, ResourceTypeHardware:
		return true
	}
	return false
}

// ListingStatus defines how a resource is offered. It doubles as the
// transaction type recorded by the ledger: a resource listed for lending
// produces a lending transaction. Whether a listing should support a
// transaction type independent of its status is an open point; the ledger
// copies the status as-is.
type ListingStatus string

// Listing status constants
const (
	StatusLending  ListingStatus = "lending"
	StatusGiveaway ListingStatus = "giveaway"
)

// Valid reports whether the listing status is a known value
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusLending, StatusGiveaway:
		return true
	}
	return false
}
