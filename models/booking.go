package models

import "time"

// BookingStatus enumerates the booking lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingHeld      BookingStatus = "HELD"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCanceled  BookingStatus = "CANCELED"
	BookingFailed    BookingStatus = "FAILED"
)

// Booking represents a reservation of a service window for a client's pet.
// HELD rows are temporary soft-locks; once HoldExpiresAt passes they no
// longer count toward capacity even before the sweep removes them.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	ServiceID     string        `bson:"service_id" json:"serviceId"`
	ClientID      string        `bson:"client_id" json:"clientId"`
	PetID         string        `bson:"pet_id" json:"petId"`
	StartDateTime time.Time     `bson:"start_date_time" json:"startDateTime"` // UTC instant
	EndDateTime   time.Time     `bson:"end_date_time" json:"endDateTime"`     // UTC instant
	Status        BookingStatus `bson:"status" json:"status"`
	HoldExpiresAt *time.Time    `bson:"hold_expires_at,omitempty" json:"holdExpiresAt,omitempty"` // set only while HELD
	PriceCents    int           `bson:"price_cents" json:"priceCents"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
}

// HoldExpired reports whether the booking is a HELD row whose hold has lapsed.
func (b *Booking) HoldExpired(now time.Time) bool {
	return b.Status == BookingHeld && b.HoldExpiresAt != nil && now.After(*b.HoldExpiresAt)
}

// BookingDraft is the payload required to place a hold on a slot.
type BookingDraft struct {
	ServiceID     string    `json:"serviceId" binding:"required"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time `json:"endDateTime" binding:"required"`
	ClientID      string    `json:"clientId" binding:"required"`
	PetID         string    `json:"petId" binding:"required"`
	PriceCents    int       `json:"priceCents" binding:"required"`
	Notes         string    `json:"notes,omitempty"`
}
