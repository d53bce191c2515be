package aggregate_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-attendo/internal/aggregate"
	aggregateerrors "go-attendo/internal/aggregate/errors"
	"go-attendo/internal/aggregate/mock"
	"go-attendo/internal/kvstore"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// Wednesday 2026-10-21 10:00 UTC.
var wednesday = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

type serviceDeps struct {
	store *kvstore.MemoryStore
	repo  aggregate.Repository
	svc   aggregate.Service
}

func setupService(t *testing.T, seed ...aggregate.DayStatusDetail) serviceDeps {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := aggregate.NewRepository(store)

	v := aggregate.NewView()
	for _, d := range seed {
		d := d
		v.Apply(d.Date, &d)
	}
	assert.NoError(t, repo.Save(context.Background(), "u1", v))

	svc := aggregate.NewService(repo, clock.NewFixed(wednesday), locker.New())
	return serviceDeps{store: store, repo: repo, svc: svc}
}

func TestService_GetWeeklyStatus(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t,
		aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeFull, RegularHours: 8},
		aggregate.DayStatusDetail{Date: "2026-10-12", Status: aggregate.CodeFull, RegularHours: 8},
	)

	t.Run("current week by default", func(t *testing.T) {
		weekly, err := deps.svc.GetWeeklyStatus(ctx, "u1", time.Time{})

		assert.NoError(t, err)
		assert.Equal(t, "2026-W43", weekly.Week)
		assert.Len(t, weekly.Days, 7)
		assert.Equal(t, aggregate.CodeFull, weekly.Days[0].Code)
		assert.Equal(t, aggregate.CodeNoData, weekly.Days[1].Code)
		assert.Equal(t, aggregate.CodeFuture, weekly.Days[3].Code)
		assert.Equal(t, aggregate.Tally{DaysFullWork: 1, RegularHours: 8}, weekly.Tally)
	})

	t.Run("past week has no future days", func(t *testing.T) {
		weekly, err := deps.svc.GetWeeklyStatus(ctx, "u1", wednesday.AddDate(0, 0, -7))

		assert.NoError(t, err)
		assert.Equal(t, "2026-W42", weekly.Week)
		for _, d := range weekly.Days[1:] {
			assert.Equal(t, aggregate.CodeNoData, d.Code)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := deps.svc.GetWeeklyStatus(ctx, "", time.Time{})
		assert.ErrorIs(t, err, aggregateerrors.ErrInvalidUserID)
	})
}

func TestService_GetMonthlyStats(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t,
		aggregate.DayStatusDetail{Date: "2026-10-20", Status: aggregate.CodeIrregular, RegularHours: 7},
		aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeFull, RegularHours: 8, OvertimeHours: 1},
		aggregate.DayStatusDetail{Date: "2026-11-02", Status: aggregate.CodeLeave, ManualOverride: true},
	)

	t.Run("days sorted within the month", func(t *testing.T) {
		stats, err := deps.svc.GetMonthlyStats(ctx, "u1", 2026, time.October)

		assert.NoError(t, err)
		assert.Equal(t, "2026-10", stats.Month)
		if assert.Len(t, stats.Days, 2) {
			assert.Equal(t, "2026-10-19", stats.Days[0].Date)
			assert.Equal(t, "2026-10-20", stats.Days[1].Date)
		}
		assert.Equal(t, aggregate.Tally{DaysFullWork: 1, DaysRV: 1, RegularHours: 15, OvertimeHours: 1}, stats.Tally)
	})

	t.Run("zero year means current month", func(t *testing.T) {
		stats, err := deps.svc.GetMonthlyStats(ctx, "u1", 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, "2026-10", stats.Month)
	})

	t.Run("empty month", func(t *testing.T) {
		stats, err := deps.svc.GetMonthlyStats(ctx, "u1", 2026, time.September)

		assert.NoError(t, err)
		assert.Empty(t, stats.Days)
		assert.Equal(t, aggregate.Tally{}, stats.Tally)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := deps.svc.GetMonthlyStats(ctx, "u1", 2026, 13)
		assert.ErrorIs(t, err, aggregateerrors.ErrInvalidMonth)
	})
}

func TestService_SetDayStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("override keeps hours and moves the tally", func(t *testing.T) {
		deps := setupService(t, aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeFull, RegularHours: 8})

		d, err := deps.svc.SetDayStatus(ctx, "u1", "2026-10-19", aggregate.CodeLeave, "  dentist ")

		assert.NoError(t, err)
		assert.Equal(t, aggregate.CodeLeave, d.Status)
		assert.Equal(t, "dentist", d.Note)
		assert.True(t, d.ManualOverride)
		assert.Equal(t, 8.0, d.RegularHours)

		v, err := deps.repo.Load(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, aggregate.CodeLeave, v.Weekly["2026-10-19"])
		assert.Equal(t, aggregate.Tally{DaysLeave: 1, RegularHours: 8}, v.Tallies.Months["2026-10"])
		assert.Equal(t, aggregate.Rebuild(v.Details), v.Tallies)
	})

	t.Run("override on an empty future day", func(t *testing.T) {
		deps := setupService(t)

		d, err := deps.svc.SetDayStatus(ctx, "u1", "2026-10-23", aggregate.CodeHoliday, "")
		assert.NoError(t, err)
		assert.Equal(t, "2026-10-23", d.Date)

		weekly, err := deps.svc.GetWeeklyStatus(ctx, "u1", time.Time{})
		assert.NoError(t, err)
		assert.Equal(t, aggregate.CodeHoliday, weekly.Days[4].Code)
	})

	t.Run("rejections", func(t *testing.T) {
		deps := setupService(t)
		tests := []struct {
			name     string
			userID   string
			date     string
			code     aggregate.Code
			note     string
			expected error
		}{
			{"missing user", "", "2026-10-19", aggregate.CodeLeave, "", aggregateerrors.ErrInvalidUserID},
			{"bad date", "u1", "2026-13-01", aggregate.CodeLeave, "", aggregateerrors.ErrInvalidDate},
			{"derived code", "u1", "2026-10-19", aggregate.CodeNoData, "", aggregateerrors.ErrInvalidCode},
			{"future code", "u1", "2026-10-19", aggregate.CodeFuture, "", aggregateerrors.ErrInvalidCode},
			{"note too long", "u1", "2026-10-19", aggregate.CodeSick, strings.Repeat("x", 501), aggregateerrors.ErrNoteTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := deps.svc.SetDayStatus(ctx, tt.userID, tt.date, tt.code, tt.note)
				assert.ErrorIs(t, err, tt.expected)
			})
		}
		assert.ElementsMatch(t, []string{"user:u1:statusDetails", "user:u1:statusTally", "user:u1:weeklyStatus"}, deps.store.Keys())
	})
}

func TestService_RebuildTallies(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t,
		aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeFull, RegularHours: 8},
		aggregate.DayStatusDetail{Date: "2026-10-20", Status: aggregate.CodeSick, ManualOverride: true},
	)
	drifted := aggregate.Tallies{
		Weeks:  map[string]aggregate.Tally{"2026-W43": {DaysAbsent: 4}},
		Months: map[string]aggregate.Tally{},
	}
	assert.NoError(t, kvstore.SetJSON(ctx, deps.store, kvstore.UserKey("u1", kvstore.KeyStatusTally), drifted))

	tallies, err := deps.svc.RebuildTallies(ctx, "u1")

	assert.NoError(t, err)
	assert.Equal(t, aggregate.Tally{DaysFullWork: 1, DaysSick: 1, RegularHours: 8}, tallies.Weeks["2026-W43"])

	v, err := deps.repo.Load(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, tallies, v.Tallies)
}

func TestService_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), "u1").Return(nil, errors.New("connection refused")).Times(2)

	svc := aggregate.NewService(repo, clock.NewFixed(wednesday), locker.New())

	_, err := svc.GetWeeklyStatus(context.Background(), "u1", time.Time{})
	assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))

	_, err = svc.SetDayStatus(context.Background(), "u1", "2026-10-19", aggregate.CodeLeave, "")
	assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
}

func TestService_ExportMonthly(t *testing.T) {
	deps := setupService(t,
		aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeFull, RegularHours: 8},
	)

	body, filename, err := deps.svc.ExportMonthly(context.Background(), "u1", 2026, time.October)

	assert.NoError(t, err)
	assert.Equal(t, "attendance_2026-10.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	assert.Equal(t, []string{"2026-10"}, f.GetSheetList())

	cellValue := func(axis string) string {
		v, err := f.GetCellValue("2026-10", axis)
		assert.NoError(t, err)
		return v
	}
	assert.Equal(t, "Date", cellValue("A2"))
	assert.Equal(t, "2026-10-01", cellValue("A3"))
	assert.Equal(t, "2026-10-19", cellValue("A21"))
	assert.Equal(t, "✓", cellValue("C21"))
	assert.Equal(t, "?", cellValue("C22"))
	assert.Equal(t, "--", cellValue("C24"))
	assert.Equal(t, "2026-10-31", cellValue("A33"))
}
