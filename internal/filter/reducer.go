package filter

import (
	"errors"
	"slices"

	"doctor-directory/internal/domain/entity"
)

var (
	ErrUnknownAction           = errors.New("unknown filter action")
	ErrInvalidConsultationMode = errors.New("invalid consultation mode")
	ErrInvalidSortOption       = errors.New("invalid sort option")
)

type ActionType string

const (
	ActionSetSearch        ActionType = "set_search"
	ActionSelectSuggestion ActionType = "select_suggestion"
	ActionToggleMode       ActionType = "toggle_mode"
	ActionToggleSpecialty  ActionType = "toggle_specialty"
	ActionToggleSort       ActionType = "toggle_sort"
	ActionReset            ActionType = "reset"
)

// Action is one user interaction with the filter controls
type Action struct {
	Type  ActionType
	Value string
}

// Reduce returns the state that follows applying action to state.
// Selecting the active mode or sort again clears it, and toggling a
// specialty removes it when selected or appends it otherwise.
// state itself is left untouched.
func Reduce(state entity.FilterState, action Action) (entity.FilterState, error) {
	next := state
	next.Specialties = slices.Clone(state.Specialties)

	switch action.Type {
	case ActionSetSearch, ActionSelectSuggestion:
		next.SearchTerm = action.Value

	case ActionToggleMode:
		mode := entity.ConsultationMode(action.Value)
		if !mode.IsValid() {
			return state, ErrInvalidConsultationMode
		}
		if state.ConsultationMode == mode {
			next.ConsultationMode = entity.ConsultationModeNone
		} else {
			next.ConsultationMode = mode
		}

	case ActionToggleSpecialty:
		if action.Value == "" {
			return state, nil
		}
		if i := slices.Index(next.Specialties, action.Value); i >= 0 {
			next.Specialties = slices.Delete(next.Specialties, i, i+1)
		} else {
			next.Specialties = append(next.Specialties, action.Value)
		}

	case ActionToggleSort:
		sortBy := entity.SortOption(action.Value)
		if !sortBy.IsValid() {
			return state, ErrInvalidSortOption
		}
		if state.SortBy == sortBy {
			next.SortBy = entity.SortNone
		} else {
			next.SortBy = sortBy
		}

	case ActionReset:
		return entity.FilterState{}, nil

	default:
		return state, ErrUnknownAction
	}

	if len(next.Specialties) == 0 {
		next.Specialties = nil
	}
	return next, nil
}
