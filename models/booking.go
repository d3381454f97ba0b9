package models

import "time"

// Booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingOngoing   = "ongoing"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking represents a rental booking made against one equipment listing.
// StartDate is a FlexDate because booking documents written by different
// clients carry either a native timestamp or a plain date string.
type Booking struct {
	BookingID   string    `bson:"bookingId" json:"bookingId"`
	EquipmentID string    `bson:"equipmentId" json:"equipmentId"`
	RenterName  string    `bson:"renterName,omitempty" json:"renterName,omitempty"`
	TotalAmount float64   `bson:"totalAmount" json:"totalAmount"`
	Status      string    `bson:"status" json:"status"`
	StartDate   FlexDate  `bson:"startDate" json:"startDate"`
	EndDate     FlexDate  `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
