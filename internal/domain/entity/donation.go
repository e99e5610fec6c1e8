package entity

import (
	"time"
)

// DonationType classifies what a donor is giving away.
type DonationType string

const (
	DonationTypePacked  DonationType = "packed"
	DonationTypeFresh   DonationType = "fresh"
	DonationTypeOrganic DonationType = "organic"
)

// IsValid reports whether the type is one of the three known donation types.
func (t DonationType) IsValid() bool {
	switch t {
	case DonationTypePacked, DonationTypeFresh, DonationTypeOrganic:
		return true
	}
	return false
}

// DonationStatus is the lifecycle state of a donation.
// There are exactly two states and a single pending -> collected transition.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCollected DonationStatus = "collected"
)

// UserSnapshot is the denormalized donor identity embedded in a donation.
type UserSnapshot struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// CollectorSnapshot is the identity of the collector stamped on collection.
type CollectorSnapshot struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Email string   `bson:"email" json:"email"`
	Role  UserRole `bson:"role" json:"role"`
}

// Donation represents a submitted food/waste donation.
// JSON field names follow the public API contract (_id, donorId, collectedBy).
type Donation struct {
	ID          string             `bson:"_id,omitempty" json:"_id"`
	Donor       UserSnapshot       `bson:"donor" json:"donorId"`
	Type        DonationType       `bson:"type" json:"type"`
	PeopleFed   *int               `bson:"people_fed,omitempty" json:"peopleFed,omitempty"`
	QuantityKg  *float64           `bson:"quantity_kg,omitempty" json:"quantityKg,omitempty"`
	Location    string             `bson:"location" json:"location"`
	Status      DonationStatus     `bson:"status" json:"status"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Collector   *CollectorSnapshot `bson:"collected_by,omitempty" json:"collectedBy,omitempty"`
	CollectedAt *time.Time         `bson:"collected_at,omitempty" json:"collectedAt,omitempty"`
}

// IsCollected reports whether the donation has already been collected.
func (d *Donation) IsCollected() bool {
	return d.Status == DonationStatusCollected
}
