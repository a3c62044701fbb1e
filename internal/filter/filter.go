// Package filter derives the views the directory renders from the fetched
// doctor list: filtered and sorted results, specialty options and name
// suggestions. It also maps a FilterState to and from URL query parameters.
//
// Every function here is pure; inputs are never modified.
package filter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// MaxSuggestions caps the autocomplete list
const MaxSuggestions = 3

// UniqueSpecialties returns every distinct specialty name in ascending order
func UniqueSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, d := range doctors {
		for _, s := range d.Specialities {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	slices.Sort(names)
	return names
}

// FilterDoctors applies search, consultation mode and specialty filters
// conjunctively, then sorts when state.SortBy is set. Without a sort the
// result keeps the input order.
func FilterDoctors(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if matches(d, state) {
			filtered = append(filtered, d)
		}
	}

	if state.SortBy.IsValid() {
		sortDoctors(filtered, state.SortBy)
	}
	return filtered
}

// NameSuggestions returns up to MaxSuggestions distinct names containing term,
// in list order. An empty term yields no suggestions.
func NameSuggestions(doctors []entity.Doctor, term string) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	if term == "" {
		return suggestions
	}

	needle := strings.ToLower(term)
	for _, d := range doctors {
		if len(suggestions) == MaxSuggestions {
			break
		}
		if !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		if slices.Contains(suggestions, d.Name) {
			continue
		}
		suggestions = append(suggestions, d.Name)
	}
	return suggestions
}

func matches(d entity.Doctor, state entity.FilterState) bool {
	if state.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(d.Name), strings.ToLower(state.SearchTerm)) {
		return false
	}

	switch state.ConsultationMode {
	case entity.ConsultationModeVideo:
		if !d.VideoConsult {
			return false
		}
	case entity.ConsultationModeClinic:
		if !d.InClinic {
			return false
		}
	}

	if len(state.Specialties) > 0 {
		return slices.ContainsFunc(state.Specialties, d.HasSpecialty)
	}
	return true
}

// FeeAmount extracts the amount from a free-form fee such as "₹ 500" by
// dropping every non-digit. ok is false when no digit is present.
func FeeAmount(fees string) (amount decimal.Decimal, ok bool) {
	var digits strings.Builder
	for _, r := range fees {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(digits.String())
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// ExperienceYears parses the leading year count of strings like
// "13 Years of experience". Leading blanks and a sign are accepted. A count
// that overflows int is reported as unparseable and sorts with the invalid
// values.
func ExperienceYears(experience string) (years int, ok bool) {
	s := strings.TrimLeft(experience, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	years, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return years, true
}

type rankedDoctor struct {
	doctor entity.Doctor
	fee    decimal.Decimal
	years  int
	valid  bool
}

// sortDoctors orders fees ascending or experience descending in place.
// Unparseable values go after all valid ones; ties keep their order.
func sortDoctors(doctors []entity.Doctor, by entity.SortOption) {
	ranked := make([]rankedDoctor, len(doctors))
	for i, d := range doctors {
		r := rankedDoctor{doctor: d}
		switch by {
		case entity.SortFees:
			r.fee, r.valid = FeeAmount(d.Fees)
		case entity.SortExperience:
			r.years, r.valid = ExperienceYears(d.Experience)
		}
		ranked[i] = r
	}

	slices.SortStableFunc(ranked, func(a, b rankedDoctor) int {
		switch {
		case !a.valid && !b.valid:
			return 0
		case !a.valid:
			return 1
		case !b.valid:
			return -1
		}
		if by == entity.SortFees {
			return a.fee.Cmp(b.fee)
		}
		return cmp.Compare(b.years, a.years)
	})

	for i, r := range ranked {
		doctors[i] = r.doctor
	}
}
