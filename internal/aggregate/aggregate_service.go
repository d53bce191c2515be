package aggregate

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	aggregateerrors "go-attendo/internal/aggregate/errors"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"

	"go.uber.org/zap"
)

const maxNoteLength = 500

//go:generate mockgen -source=aggregate_service.go -destination=mock/aggregate_service_mock.go -package=mock
type Service interface {
	GetWeeklyStatus(ctx context.Context, userID string, ref time.Time) (WeeklyStatus, error)
	GetMonthlyStats(ctx context.Context, userID string, year int, month time.Month) (MonthlyStats, error)
	SetDayStatus(ctx context.Context, userID, date string, code Code, note string) (DayStatusDetail, error)
	RebuildTallies(ctx context.Context, userID string) (Tallies, error)
	ExportMonthly(ctx context.Context, userID string, year int, month time.Month) ([]byte, string, error)
}

type service struct {
	repo   Repository
	clock  clock.Clock
	locks  *locker.Keyed
	logger *zap.Logger
}

func NewService(repo Repository, clk clock.Clock, locks *locker.Keyed, logger ...*zap.Logger) Service {
	l := zap.L().Named("aggregate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("aggregate.service")
	}
	if locks == nil {
		locks = locker.New()
	}
	return &service{repo: repo, clock: clk, locks: locks, logger: l}
}

func (s *service) GetWeeklyStatus(ctx context.Context, userID string, ref time.Time) (WeeklyStatus, error) {
	if userID == "" {
		return WeeklyStatus{}, aggregateerrors.ErrInvalidUserID
	}
	if ref.IsZero() {
		ref = s.clock.Now()
	}
	v, err := s.repo.Load(ctx, userID)
	if err != nil {
		s.logger.Error("weekly status load failed", zap.String("user_id", userID), zap.Error(err))
		return WeeklyStatus{}, apperror.Storage(err)
	}

	week := WeekKey(WeekStart(ref))
	return WeeklyStatus{
		Week:  week,
		Days:  WeeklyGrid(v.Weekly, ref, s.clock.Now()),
		Tally: v.Tallies.Weeks[week],
	}, nil
}

func (s *service) GetMonthlyStats(ctx context.Context, userID string, year int, month time.Month) (MonthlyStats, error) {
	if userID == "" {
		return MonthlyStats{}, aggregateerrors.ErrInvalidUserID
	}
	if year == 0 {
		now := s.clock.Now()
		year, month = now.Year(), now.Month()
	}
	if month < time.January || month > time.December {
		return MonthlyStats{}, aggregateerrors.ErrInvalidMonth
	}
	v, err := s.repo.Load(ctx, userID)
	if err != nil {
		s.logger.Error("monthly stats load failed", zap.String("user_id", userID), zap.Error(err))
		return MonthlyStats{}, apperror.Storage(err)
	}
	return monthlyStats(v, year, month), nil
}

func monthlyStats(v *View, year int, month time.Month) MonthlyStats {
	key := MonthKey(year, month)
	days := make([]DayStatusDetail, 0)
	for date, d := range v.Details {
		if strings.HasPrefix(date, key+"-") {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return MonthlyStats{
		Month: key,
		Tally: v.Tallies.Months[key],
		Days:  days,
	}
}

func (s *service) SetDayStatus(ctx context.Context, userID, date string, code Code, note string) (DayStatusDetail, error) {
	s.logger.Debug("set day status requested",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("code", string(code)),
	)
	if userID == "" {
		return DayStatusDetail{}, aggregateerrors.ErrInvalidUserID
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DayStatusDetail{}, aggregateerrors.ErrInvalidDate
	}
	if !code.Manual() {
		return DayStatusDetail{}, aggregateerrors.ErrInvalidCode
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > maxNoteLength {
		return DayStatusDetail{}, aggregateerrors.ErrNoteTooLong
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	v, err := s.repo.Load(ctx, userID)
	if err != nil {
		s.logger.Error("set day status load failed", zap.Error(err))
		return DayStatusDetail{}, apperror.Storage(err)
	}

	next := DayStatusDetail{Date: date}
	if prev := v.Detail(date); prev != nil {
		next = *prev
	}
	next.Status = code
	next.Note = note
	next.ManualOverride = true
	v.Apply(date, &next)

	if err := s.repo.Save(ctx, userID, v); err != nil {
		s.logger.Error("set day status persist failed", zap.String("date", date), zap.Error(err))
		return DayStatusDetail{}, apperror.Storage(err)
	}

	s.logger.Info("set day status success", zap.String("date", date), zap.String("code", string(code)))
	return next, nil
}

func (s *service) RebuildTallies(ctx context.Context, userID string) (Tallies, error) {
	if userID == "" {
		return Tallies{}, aggregateerrors.ErrInvalidUserID
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	v, err := s.repo.Load(ctx, userID)
	if err != nil {
		return Tallies{}, apperror.Storage(err)
	}

	rebuilt := Rebuild(v.Details)
	if !sameTallies(rebuilt, v.Tallies) {
		s.logger.Warn("tallies drifted from details, replacing",
			zap.String("user_id", userID),
			zap.Int("weeks", len(rebuilt.Weeks)),
			zap.Int("months", len(rebuilt.Months)),
		)
	}
	v.Tallies = rebuilt

	if err := s.repo.Save(ctx, userID, v); err != nil {
		s.logger.Error("rebuild tallies persist failed", zap.Error(err))
		return Tallies{}, apperror.Storage(err)
	}
	return rebuilt, nil
}

func (s *service) ExportMonthly(ctx context.Context, userID string, year int, month time.Month) ([]byte, string, error) {
	stats, err := s.GetMonthlyStats(ctx, userID, year, month)
	if err != nil {
		return nil, "", err
	}

	y, m, _ := parseMonthKey(stats.Month)
	body, err := buildMonthlyWorkbook(stats, y, m, s.clock.Now())
	if err != nil {
		s.logger.Error("monthly export failed", zap.String("month", stats.Month), zap.Error(err))
		return nil, "", aggregateerrors.ErrExportFailed
	}
	return body, "attendance_" + stats.Month + ".xlsx", nil
}

func parseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

func sameTallies(a, b Tallies) bool {
	if len(a.Weeks) != len(b.Weeks) || len(a.Months) != len(b.Months) {
		return false
	}
	for k, t := range a.Weeks {
		if b.Weeks[k] != t {
			return false
		}
	}
	for k, t := range a.Months {
		if b.Months[k] != t {
			return false
		}
	}
	return true
}
