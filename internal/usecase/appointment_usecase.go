package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrAppointmentInPast      = errors.New("appointment date is in the past")
	ErrClinicClosed           = errors.New("no appointments on sundays")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
)

type AppointmentUsecase interface {
	GetTimeSlots(ctx context.Context) *dto.TimeSlotListResponse
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log     *logrus.Logger
	catalog DoctorSnapshotter
	now     func() time.Time
}

func NewAppointmentUsecase(log *logrus.Logger, catalog DoctorSnapshotter, now func() time.Time) AppointmentUsecase {
	if now == nil {
		now = time.Now
	}
	return &appointmentUsecase{
		log:     log,
		catalog: catalog,
		now:     now,
	}
}

func (u *appointmentUsecase) GetTimeSlots(ctx context.Context) *dto.TimeSlotListResponse {
	return &dto.TimeSlotListResponse{
		TimeSlots:     entity.TimeSlots,
		ClosedWeekday: entity.ClosedWeekday.String(),
	}
}

// BookAppointment confirms a booking without storing it. The confirmation
// message is what the directory shows the patient.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	now := u.now()

	date, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, ErrAppointmentInPast
	}
	if date.Weekday() == entity.ClosedWeekday {
		return nil, ErrClinicClosed
	}
	if !entity.IsTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	doctors, err := loadedDoctors(u.catalog)
	if err != nil {
		return nil, err
	}

	doctor := findDoctor(doctors, req.DoctorID)
	if doctor == nil {
		u.log.Warnf("Failed to book appointment: %+v", "doctor not found")
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		ID:       uuid.New(),
		Doctor:   *doctor,
		Date:     date,
		TimeSlot: req.TimeSlot,
		BookedAt: now,
	}

	message := fmt.Sprintf("Appointment booked with %s for %s at %s",
		doctorTitle(doctor.Name), longDate(date), req.TimeSlot)

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctor.ID,
	}).Info(message)

	return converter.AppointmentToResponse(appointment, message), nil
}

// doctorTitle prefixes "Dr." unless the published name already carries it
func doctorTitle(name string) string {
	if strings.HasPrefix(name, "Dr.") || strings.HasPrefix(name, "Dr ") {
		return name
	}
	return "Dr. " + name
}

// longDate renders dates like "April 29th, 2024"
func longDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
