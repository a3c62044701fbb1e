package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

const msgCatalogUnavailable = "Failed to load doctor information. Please try again."

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	state := filter.Decode(r.URL.Query())

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), state)
	if err != nil {
		writeCatalogError(w, err, "Failed to get doctors")
		return
	}

	if doctors.Empty {
		response.Success(w, http.StatusOK, "No doctors match the selected filters", doctors)
		return
	}
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		writeCatalogError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		writeCatalogError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get(filter.ParamSearch)

	suggestions, err := h.directoryUsecase.GetSuggestions(r.Context(), search)
	if err != nil {
		writeCatalogError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) TransitionFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transition, err := h.directoryUsecase.TransitionFilter(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFilterQuery):
			response.Error(w, http.StatusBadRequest, "Invalid filter query", nil)
		case errors.Is(err, filter.ErrInvalidConsultationMode):
			response.Error(w, http.StatusBadRequest, "Consultation mode must be Video Consult or In Clinic", nil)
		case errors.Is(err, filter.ErrInvalidSortOption):
			response.Error(w, http.StatusBadRequest, "Sort must be fees or experience", nil)
		case errors.Is(err, filter.ErrUnknownAction):
			response.Error(w, http.StatusBadRequest, "Unknown filter action", nil)
		default:
			response.InternalServerError(w, "Failed to update filters")
		}
		return
	}

	response.Success(w, http.StatusOK, "Filters updated successfully", transition)
}

func (h *DoctorHandler) ReloadDoctors(w http.ResponseWriter, r *http.Request) {
	status, err := h.directoryUsecase.Reload(r.Context())
	if err != nil {
		if err == usecase.ErrReloadInProgress {
			response.Error(w, http.StatusConflict, "Doctor information is already reloading", nil)
			return
		}
		writeCatalogError(w, err, "Failed to reload doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors reloaded successfully", status)
}

// writeCatalogError maps the catalog load state onto a response
func writeCatalogError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrCatalogLoading:
		response.ServiceUnavailable(w, "Doctor information is still loading")
	case usecase.ErrCatalogUnavailable:
		response.ServiceUnavailable(w, msgCatalogUnavailable)
	default:
		response.InternalServerError(w, fallback)
	}
}
