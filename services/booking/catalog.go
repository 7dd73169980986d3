package booking

import "fmt"

// Clinic working-hours rule for the daily slot catalog.
const (
	openingHour = 8  // first bookable hour
	closingHour = 17 // exclusive
	breakStart  = 12 // midday break, inclusive
	breakEnd    = 14 // exclusive
)

// slotDateLayout is the calendar-date form used by the ledger and bookings.
const slotDateLayout = "2006-01-02"

// GenerateDailySlots returns the ordered catalog of bookable time-of-day
// slots: every hour on the hour from opening to closing, excluding the
// midday break. Pure and deterministic.
func GenerateDailySlots() []string {
	slots := make([]string, 0, closingHour-openingHour)
	for hour := openingHour; hour < closingHour; hour++ {
		if hour >= breakStart && hour < breakEnd {
			continue
		}
		slots = append(slots, fmt.Sprintf("%d:00", hour))
	}
	return slots
}
