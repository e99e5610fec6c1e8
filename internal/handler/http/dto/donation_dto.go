package dto

import (
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// Request DTOs for Donation Handlers

// CreateDonationRequest defines the structure for submitting a new donation
type CreateDonationRequest struct {
	Type       string   `json:"type" binding:"required,donationtype"`
	PeopleFed  *int     `json:"peopleFed" binding:"omitempty,gt=0"`
	QuantityKg *float64 `json:"quantityKg" binding:"omitempty,gt=0"`
	Location   string   `json:"location" binding:"required"`
}

// Response DTOs

// DonationResponse wraps a single donation with a message.
type DonationResponse struct {
	Message  string           `json:"message"`
	Donation *entity.Donation `json:"donation"`
}

// DonationListResponse is the feed payload for the list endpoints.
type DonationListResponse struct {
	Donations []*entity.Donation `json:"donations"`
}

// ToDonationListResponse wraps donations, normalizing nil to an empty slice so
// the JSON field is always an array.
func ToDonationListResponse(donations []*entity.Donation) DonationListResponse {
	if donations == nil {
		donations = []*entity.Donation{}
	}
	return DonationListResponse{Donations: donations}
}
