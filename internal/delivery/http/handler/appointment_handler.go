package handler

import (
	"encoding/json"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Time slots retrieved successfully", h.appointmentUsecase.GetTimeSlots(r.Context()))
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidAppointmentDate:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		case usecase.ErrAppointmentInPast:
			response.Error(w, http.StatusBadRequest, "Appointment date must not be in the past", nil)
		case usecase.ErrClinicClosed:
			response.Error(w, http.StatusBadRequest, "Appointments are not available on Sundays", nil)
		case usecase.ErrInvalidTimeSlot:
			response.Error(w, http.StatusBadRequest, "Invalid time slot", nil)
		default:
			writeCatalogError(w, err, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, appointment.Message, appointment)
}
