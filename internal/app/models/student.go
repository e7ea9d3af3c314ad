package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64     `json:"id" db:"id" example:"1"`                                 // Unique identifier for the student record
	Name             string    `json:"name" db:"name" example:"Ada Lovelace"`                  // Display name
	Email            string    `json:"email" db:"email" example:"ada@campus.edu"`              // Contact email
	ExperiencePoints int       `json:"experiencePoints" db:"experience_points" example:"120"`  // Reward point balance, credited by the ledger, debited on redemption
	CreatedAt        time.Time `json:"createdAt" db:"created_at" example:"2025-04-23T12:01:05Z"`
}
