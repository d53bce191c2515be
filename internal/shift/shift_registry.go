package shift

import (
	"slices"
	"strings"

	"go-attendo/internal/shared/apperror"
	shifterrors "go-attendo/internal/shift/errors"
)

var validate = apperror.NewValidator()

// Validate checks the fields of s and the case-insensitive name uniqueness
// against existing, ignoring the entry that shares s.ID.
func Validate(s Shift, existing []Shift) error {
	if strings.TrimSpace(s.Name) == "" {
		return shifterrors.ErrEmptyName
	}
	if err := validate.Struct(s); err != nil {
		return apperror.MapValidationError(err)
	}

	name := strings.ToLower(strings.TrimSpace(s.Name))
	for _, other := range existing {
		if other.ID == s.ID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(other.Name)) == name {
			return shifterrors.ErrDuplicateName
		}
	}
	return nil
}

// IsDuplicate reports whether another shift has the same schedule, reminders,
// sign button and applied days. Name and id are not compared; an unset sign
// button equals false.
func IsDuplicate(s Shift, existing []Shift) bool {
	for _, other := range existing {
		if other.ID == s.ID {
			continue
		}
		if sameConfig(s, other) {
			return true
		}
	}
	return false
}

func sameConfig(a, b Shift) bool {
	return a.StartWorkTime == b.StartWorkTime &&
		a.EndWorkTime == b.EndWorkTime &&
		a.DepartureTime == b.DepartureTime &&
		a.RemindBeforeWork == b.RemindBeforeWork &&
		a.RemindAfterWork == b.RemindAfterWork &&
		a.signButton() == b.signButton() &&
		slices.Equal(a.sortedDays(), b.sortedDays())
}

// activate marks id active and every other shift inactive.
func activate(shifts []Shift, id string) ([]Shift, bool) {
	out := make([]Shift, len(shifts))
	found := false
	for i, s := range shifts {
		s.Active = s.ID == id
		found = found || s.Active
		out[i] = s
	}
	return out, found
}

// remove drops id. When it was active the first remaining shift is promoted.
func remove(shifts []Shift, id string) (rest []Shift, removed Shift, promoted *Shift, ok bool) {
	rest = make([]Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.ID == id {
			removed, ok = s, true
			continue
		}
		rest = append(rest, s)
	}
	if !ok {
		return shifts, Shift{}, nil, false
	}
	if removed.Active && len(rest) > 0 {
		rest, _ = activate(rest, rest[0].ID)
		p := rest[0]
		promoted = &p
	}
	return rest, removed, promoted, true
}

func findByID(shifts []Shift, id string) (Shift, int) {
	for i, s := range shifts {
		if s.ID == id {
			return s, i
		}
	}
	return Shift{}, -1
}

func activeOf(shifts []Shift) *Shift {
	for _, s := range shifts {
		if s.Active {
			cp := s
			return &cp
		}
	}
	return nil
}
