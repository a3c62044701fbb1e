package entity

// ConsultationMode distinguishes remote and physical availability.
// The zero value means no filter.
type ConsultationMode string

const (
	ConsultationModeNone   ConsultationMode = ""
	ConsultationModeVideo  ConsultationMode = "Video Consult"
	ConsultationModeClinic ConsultationMode = "In Clinic"
)

// IsValid reports whether m is one of the selectable modes
func (m ConsultationMode) IsValid() bool {
	return m == ConsultationModeVideo || m == ConsultationModeClinic
}

// SortOption selects the ordering of the result list.
// The zero value keeps the fetched order.
type SortOption string

const (
	SortNone       SortOption = ""
	SortFees       SortOption = "fees"
	SortExperience SortOption = "experience"
)

func (s SortOption) IsValid() bool {
	return s == SortFees || s == SortExperience
}

// FilterState is the complete search, filter and sort intent of one session.
// Treat it as an immutable value; transitions go through filter.Reduce.
type FilterState struct {
	SearchTerm       string
	ConsultationMode ConsultationMode
	Specialties      []string // deduplicated, insertion ordered
	SortBy           SortOption
}

// IsDefault reports whether no search, filter or sort is active
func (f FilterState) IsDefault() bool {
	return f.SearchTerm == "" &&
		f.ConsultationMode == ConsultationModeNone &&
		len(f.Specialties) == 0 &&
		f.SortBy == SortNone
}

// HasSpecialty reports whether name is among the selected specialties
func (f FilterState) HasSpecialty(name string) bool {
	for _, s := range f.Specialties {
		if s == name {
			return true
		}
	}
	return false
}
