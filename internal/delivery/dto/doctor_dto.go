package dto

import "github.com/shopspring/decimal"

// Response DTOs

type DoctorResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	NameInitials       string           `json:"name_initials"`
	Photo              *string          `json:"photo"`
	DoctorIntroduction string           `json:"doctor_introduction"`
	Specialities       []string         `json:"specialities"`
	Fees               string           `json:"fees"`
	FeeAmount          *decimal.Decimal `json:"fee_amount"`
	Experience         string           `json:"experience"`
	ExperienceYears    *int             `json:"experience_years"`
	Languages          []string         `json:"languages"`
	Clinic             ClinicResponse   `json:"clinic"`
	VideoConsult       bool             `json:"video_consult"`
	InClinic           bool             `json:"in_clinic"`
}

type ClinicResponse struct {
	Name         string `json:"name"`
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	Location     string `json:"location"`
	LogoURL      string `json:"logo_url"`
}

// DoctorListResponse is one rendering of the directory. Query is the
// canonical query string of Filters; clients replace their URL with it.
type DoctorListResponse struct {
	Doctors    []DoctorResponse    `json:"doctors"`
	Total      int                 `json:"total"`
	Empty      bool                `json:"empty"`
	Filters    FilterStateResponse `json:"filters"`
	Query      string              `json:"query"`
	ResetQuery string              `json:"reset_query"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type SuggestionListResponse struct {
	Search      string   `json:"search"`
	Suggestions []string `json:"suggestions"`
}

type CatalogStatusResponse struct {
	Status   string `json:"status"`
	Total    int    `json:"total"`
	LoadedAt string `json:"loaded_at,omitempty"`
}
