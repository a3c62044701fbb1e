package filter

import (
	"fmt"
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query parameter keys shared with the directory URL
const (
	ParamSearch      = "search"
	ParamMode        = "mode"
	ParamSpecialties = "specialties"
	ParamSort        = "sort"
)

const specialtySeparator = ","

// Encode serializes the non-default fields of state. A default state
// encodes to empty values.
func Encode(state entity.FilterState) url.Values {
	values := url.Values{}
	if state.SearchTerm != "" {
		values.Set(ParamSearch, state.SearchTerm)
	}
	if state.ConsultationMode != entity.ConsultationModeNone {
		values.Set(ParamMode, string(state.ConsultationMode))
	}
	if len(state.Specialties) > 0 {
		values.Set(ParamSpecialties, strings.Join(state.Specialties, specialtySeparator))
	}
	if state.SortBy != entity.SortNone {
		values.Set(ParamSort, string(state.SortBy))
	}
	return values
}

// EncodeQuery is Encode rendered as a query string without the leading '?'
func EncodeQuery(state entity.FilterState) string {
	return Encode(state).Encode()
}

// Decode builds a FilterState from query values. Missing keys take their
// default. Unknown mode or sort values fall back to no filter, empty
// specialty segments are dropped and repeats collapse to their first use.
func Decode(values url.Values) entity.FilterState {
	state := entity.FilterState{
		SearchTerm: values.Get(ParamSearch),
	}

	if mode := entity.ConsultationMode(values.Get(ParamMode)); mode.IsValid() {
		state.ConsultationMode = mode
	}
	if sortBy := entity.SortOption(values.Get(ParamSort)); sortBy.IsValid() {
		state.SortBy = sortBy
	}

	if raw := values.Get(ParamSpecialties); raw != "" {
		for _, name := range strings.Split(raw, specialtySeparator) {
			if name == "" || state.HasSpecialty(name) {
				continue
			}
			state.Specialties = append(state.Specialties, name)
		}
	}
	return state
}

// ParseQuery decodes a raw query string, with or without a leading '?'
func ParseQuery(rawQuery string) (entity.FilterState, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return entity.FilterState{}, fmt.Errorf("parse filter query: %w", err)
	}
	return Decode(values), nil
}
