package models

// EquipmentStats counts an owner's listings by operational status.
type EquipmentStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Rented      int `json:"rented"`
	Maintenance int `json:"maintenance"`
}

// BookingStats counts an owner's bookings by lifecycle bucket.
type BookingStats struct {
	Upcoming  int `json:"upcoming"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
}

// EarningsSummary holds the four display totals. Lifetime sums every booking
// regardless of status; Today and Month only count completed bookings whose
// start date falls in the current day or calendar month; Pending sums
// confirmed and ongoing bookings.
type EarningsSummary struct {
	Today    float64 `json:"today"`
	Month    float64 `json:"month"`
	Lifetime float64 `json:"lifetime"`
	Pending  float64 `json:"pending"`
}

// OwnerProfile is derived from the owner's first listing.
type OwnerProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// DashboardOverview is the assembled owner dashboard payload.
type DashboardOverview struct {
	Owner          OwnerProfile    `json:"owner"`
	EquipmentStats EquipmentStats  `json:"equipmentStats"`
	BookingStats   BookingStats    `json:"bookingStats"`
	Earnings       EarningsSummary `json:"earnings"`
	Equipment      []Equipment     `json:"equipment"`
	RecentBookings []Booking       `json:"recentBookings"`
}
