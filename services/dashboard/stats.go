package dashboard

import (
	"time"

	"shramic/models"
)

// ComputeEquipmentStats counts listings by operational status. A listing
// without a currentStatus counts as Available; that default is policy, not
// an accident.
func ComputeEquipmentStats(equipment []models.Equipment) models.EquipmentStats {
	stats := models.EquipmentStats{Total: len(equipment)}
	for _, e := range equipment {
		switch e.CurrentStatus {
		case models.EquipmentRented:
			stats.Rented++
		case models.EquipmentMaintenance:
			stats.Maintenance++
		default:
			stats.Available++
		}
	}
	return stats
}

// ComputeBookingStats buckets bookings by lifecycle. Upcoming covers both
// pending and confirmed bookings.
func ComputeBookingStats(bookings []models.Booking) models.BookingStats {
	var stats models.BookingStats
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending, models.BookingConfirmed:
			stats.Upcoming++
		case models.BookingOngoing:
			stats.Ongoing++
		case models.BookingCompleted:
			stats.Completed++
		}
	}
	return stats
}

// ComputeEarnings reduces a booking list into the four display totals
// relative to the reference date. Lifetime sums every booking regardless of
// status; Today and Month only count completed bookings whose start date
// falls on the reference day / in the reference calendar month; Pending
// sums confirmed and ongoing bookings.
func ComputeEarnings(bookings []models.Booking, ref time.Time) models.EarningsSummary {
	var earnings models.EarningsSummary
	refYear, refMonth, refDay := ref.Date()

	for _, b := range bookings {
		earnings.Lifetime += b.TotalAmount

		switch b.Status {
		case models.BookingCompleted:
			year, month, day := b.StartDate.Date()
			if year == refYear && month == refMonth {
				earnings.Month += b.TotalAmount
				if day == refDay {
					earnings.Today += b.TotalAmount
				}
			}
		case models.BookingConfirmed, models.BookingOngoing:
			earnings.Pending += b.TotalAmount
		}
	}
	return earnings
}
