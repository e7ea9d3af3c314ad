package models

import "time"

// Transaction defines a completed exchange based on the 'transactions' table.
// Rows are append-only: once recorded they are never updated or deleted.
type Transaction struct {
	ID              int64         `json:"id" db:"id" example:"1"`
	ResourceID      int64         `json:"resourceId" db:"resource_id" example:"1"`
	ProviderID      int64         `json:"providerId" db:"provider_id" example:"1"`
	ReceiverID      int64         `json:"receiverId" db:"receiver_id" example:"2"`
	TransactionType ListingStatus `json:"transactionType" db:"transaction_type" example:"lending"` // copied from the resource status at transaction time
	PointsEarned    int           `json:"pointsEarned" db:"points_earned" example:"20"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
}
