package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlots are the bookable times offered for every doctor and every open day
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
}

// ClosedWeekday is the day no appointments can be booked
const ClosedWeekday = time.Sunday

// IsTimeSlot reports whether slot is one of TimeSlots
func IsTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Appointment is a simulated booking. It is never stored.
type Appointment struct {
	ID       uuid.UUID
	Doctor   Doctor
	Date     time.Time
	TimeSlot string
	BookedAt time.Time
}
