package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment, message string) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		DoctorID:   appointment.Doctor.ID,
		DoctorName: appointment.Doctor.Name,
		Date:       appointment.Date.Format("2006-01-02"),
		TimeSlot:   appointment.TimeSlot,
		Message:    message,
	}
}
