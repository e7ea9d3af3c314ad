package models

// Reward defines a redeemable reward based on the 'rewards' table.
// Rewards are seed data; redemption debits the student but never mutates
// the reward row itself.
type Reward struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"name" db:"name" example:"Printing Credits"`
	Description    string `json:"description" db:"description" example:"100 pages free printing"`
	PointsRequired int    `json:"pointsRequired" db:"points_required" example:"75"`
	IsAvailable    bool   `json:"isAvailable" db:"is_available" example:"true"`
}
