package shift

import (
	"testing"

	shifterrors "go-attendo/internal/shift/errors"

	"github.com/stretchr/testify/assert"
)

func baseShift(id, name string) Shift {
	return Shift{
		ID:               id,
		Name:             name,
		StartWorkTime:    "09:00",
		EndWorkTime:      "18:00",
		DepartureTime:    "08:15",
		RemindBeforeWork: 15,
		RemindAfterWork:  10,
		AppliedDays:      []int{1, 2, 3, 4, 5},
	}
}

func TestValidate(t *testing.T) {
	existing := []Shift{baseShift("a", "Morning")}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(baseShift("b", "Evening (remote)"), existing))
	})

	t.Run("blank name", func(t *testing.T) {
		err := Validate(baseShift("b", "   "), existing)
		assert.ErrorIs(t, err, shifterrors.ErrEmptyName)
	})

	t.Run("name taken ignoring case", func(t *testing.T) {
		err := Validate(baseShift("b", "  morning"), existing)
		assert.ErrorIs(t, err, shifterrors.ErrDuplicateName)
	})

	t.Run("same id keeps its own name", func(t *testing.T) {
		assert.NoError(t, Validate(baseShift("a", "Morning"), existing))
	})

	t.Run("bad clock value", func(t *testing.T) {
		s := baseShift("b", "Night")
		s.StartWorkTime = "25:00"
		assert.Error(t, Validate(s, existing))
	})

	t.Run("illegal characters in name", func(t *testing.T) {
		assert.Error(t, Validate(baseShift("b", "Night#1"), existing))
	})

	t.Run("weekday out of range", func(t *testing.T) {
		s := baseShift("b", "Night")
		s.AppliedDays = []int{7}
		assert.Error(t, Validate(s, existing))
	})
}

func TestIsDuplicate(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name   string
		mutate func(s *Shift)
		want   bool
	}{
		{"identical config different name", func(s *Shift) { s.Name = "Other" }, true},
		{"day order ignored", func(s *Shift) { s.AppliedDays = []int{5, 4, 3, 2, 1} }, true},
		{"unset sign button equals false", func(s *Shift) { s.ShowSignButton = &off }, true},
		{"sign button differs", func(s *Shift) { s.ShowSignButton = &on }, false},
		{"start differs", func(s *Shift) { s.StartWorkTime = "09:30" }, false},
		{"departure differs", func(s *Shift) { s.DepartureTime = "08:00" }, false},
		{"reminder offset differs", func(s *Shift) { s.RemindAfterWork = 0 }, false},
		{"days differ", func(s *Shift) { s.AppliedDays = []int{1, 2, 3} }, false},
	}

	existing := []Shift{baseShift("a", "Morning")}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := baseShift("b", "Morning")
			tt.mutate(&candidate)
			assert.Equal(t, tt.want, IsDuplicate(candidate, existing))
		})
	}

	t.Run("never duplicates itself", func(t *testing.T) {
		assert.False(t, IsDuplicate(baseShift("a", "Morning"), existing))
	})
}

func TestActivate_AtMostOneActive(t *testing.T) {
	shifts := []Shift{baseShift("a", "A"), baseShift("b", "B"), baseShift("c", "C")}
	shifts[0].Active = true

	next, ok := activate(shifts, "c")
	assert.True(t, ok)

	active := 0
	for _, s := range next {
		if s.Active {
			active++
			assert.Equal(t, "c", s.ID)
		}
	}
	assert.Equal(t, 1, active)
	assert.True(t, shifts[0].Active, "input slice must not change")

	_, ok = activate(shifts, "missing")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	t.Run("removing active promotes first remaining", func(t *testing.T) {
		shifts := []Shift{baseShift("a", "A"), baseShift("b", "B"), baseShift("c", "C")}
		shifts[1].Active = true

		rest, removed, promoted, ok := remove(shifts, "b")
		assert.True(t, ok)
		assert.Equal(t, "b", removed.ID)
		assert.Len(t, rest, 2)
		if assert.NotNil(t, promoted) {
			assert.Equal(t, "a", promoted.ID)
		}
		assert.True(t, rest[0].Active)
		assert.False(t, rest[1].Active)
	})

	t.Run("removing inactive promotes nothing", func(t *testing.T) {
		shifts := []Shift{baseShift("a", "A"), baseShift("b", "B")}
		shifts[0].Active = true

		rest, _, promoted, ok := remove(shifts, "b")
		assert.True(t, ok)
		assert.Nil(t, promoted)
		assert.Equal(t, shifts[:1], rest)
	})

	t.Run("removing last active leaves none", func(t *testing.T) {
		shifts := []Shift{baseShift("a", "A")}
		shifts[0].Active = true

		rest, _, promoted, ok := remove(shifts, "a")
		assert.True(t, ok)
		assert.Empty(t, rest)
		assert.Nil(t, promoted)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, _, ok := remove([]Shift{baseShift("a", "A")}, "x")
		assert.False(t, ok)
	})
}

func TestShift_StandardMinutes(t *testing.T) {
	s := baseShift("a", "A")
	assert.Equal(t, 540, s.StandardMinutes())

	s.OfficeEndTime = "17:30"
	assert.Equal(t, 510, s.StandardMinutes())

	night := Shift{StartWorkTime: "22:00", EndWorkTime: "06:00"}
	assert.Equal(t, 480, night.StandardMinutes())
}
