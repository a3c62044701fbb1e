package dto

import "github.com/google/uuid"

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	TimeSlot string `json:"time_slot" validate:"required"`                // e.g. 09:30 AM
}

// Response DTOs

type AppointmentResponse struct {
	ID         uuid.UUID `json:"id"`
	DoctorID   string    `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Message    string    `json:"message"`
}

type TimeSlotListResponse struct {
	TimeSlots     []string `json:"time_slots"`
	ClosedWeekday string   `json:"closed_weekday"`
}
