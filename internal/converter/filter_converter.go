package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
)

func FilterStateToResponse(state entity.FilterState) dto.FilterStateResponse {
	response := dto.FilterStateResponse{
		Search:      state.SearchTerm,
		Specialties: state.Specialties,
	}
	if response.Specialties == nil {
		response.Specialties = []string{}
	}
	if state.ConsultationMode != entity.ConsultationModeNone {
		mode := string(state.ConsultationMode)
		response.ConsultationMode = &mode
	}
	if state.SortBy != entity.SortNone {
		sortBy := string(state.SortBy)
		response.SortBy = &sortBy
	}
	return response
}

func FilterActionFromRequest(req dto.FilterActionRequest) filter.Action {
	return filter.Action{
		Type:  filter.ActionType(req.Type),
		Value: req.Value,
	}
}
