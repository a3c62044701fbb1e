package dto

// Request DTOs

type FilterActionRequest struct {
	Type  string `json:"type" validate:"required,oneof=set_search select_suggestion toggle_mode toggle_specialty toggle_sort reset"`
	Value string `json:"value" validate:"omitempty,max=200"`
}

// FilterTransitionRequest applies Action to the state encoded in Query
type FilterTransitionRequest struct {
	Query  string              `json:"query" validate:"omitempty,max=2000"`
	Action FilterActionRequest `json:"action"`
}

// Response DTOs

type FilterStateResponse struct {
	Search           string   `json:"search"`
	ConsultationMode *string  `json:"consultation_mode"`
	Specialties      []string `json:"specialties"`
	SortBy           *string  `json:"sort_by"`
}

type FilterTransitionResponse struct {
	Filters FilterStateResponse `json:"filters"`
	Query   string              `json:"query"`
}
