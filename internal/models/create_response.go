package models

// CreateResponse represents the response after creating any owned record
type CreateResponse struct {
	ID int64 `json:"id"`
}
