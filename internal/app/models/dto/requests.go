package dto

// RegisterStudentRequest is the payload for registering a student
type RegisterStudentRequest struct {
	Name  string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required" example:"ada@campus.edu"`
}

// RegisterStudentResponse returns the new student's identifier
type RegisterStudentResponse struct {
	StudentID int64 `json:"studentId" example:"1"`
}

// AddResourceRequest is the payload for listing a new resource
type AddResourceRequest struct {
	StudentID   int64   `json:"studentId" binding:"required" example:"1"`
	Type        string  `json:"type" binding:"required" example:"book" enums:"book,notes,hardware"`
	Name        string  `json:"name" binding:"required" example:"Intro to Algorithms"`
	Description string  `json:"description" example:"CLRS copy, third edition"`
	Status      string  `json:"status" binding:"required" example:"lending" enums:"lending,giveaway"`
	Cost        float64 `json:"cost" example:"0"`
}

// AddResourceResponse returns the new resource's identifier
type AddResourceResponse struct {
	ResourceID int64 `json:"resourceId" example:"1"`
}

// ProcessTransactionRequest is the payload for recording an exchange
type ProcessTransactionRequest struct {
	ResourceID int64 `json:"resourceId" binding:"required" example:"1"`
	ProviderID int64 `json:"providerId" binding:"required" example:"1"`
	ReceiverID int64 `json:"receiverId" binding:"required" example:"2"`
}

// ProcessTransactionResponse returns the points credited to the provider
type ProcessTransactionResponse struct {
	Points int `json:"points" example:"20"`
}

// RedeemRewardRequest is the payload for redeeming a reward
type RedeemRewardRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"1"`
	RewardID  int64 `json:"rewardId" binding:"required" example:"3"`
}

// RedeemRewardResponse reports a successful redemption
type RedeemRewardResponse struct {
	Status     string `json:"status" example:"redeemed"`
	RewardName string `json:"rewardName" example:"Printing Credits"`
}
