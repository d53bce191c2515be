package aggregate

import (
	"context"

	"go-attendo/internal/kvstore"
)

// View is the derived state kept next to the status history.
type View struct {
	Details map[string]DayStatusDetail
	Weekly  map[string]Code
	Tallies Tallies
}

func NewView() *View {
	return &View{
		Details: map[string]DayStatusDetail{},
		Weekly:  map[string]Code{},
		Tallies: NewTallies(),
	}
}

// Apply replaces the detail of date with next, or removes it when next is nil,
// and corrects the tallies.
func (v *View) Apply(date string, next *DayStatusDetail) {
	var old *DayStatusDetail
	if prev, ok := v.Details[date]; ok {
		old = &prev
	}

	if next == nil {
		delete(v.Details, date)
		delete(v.Weekly, date)
	} else {
		v.Details[date] = *next
		v.Weekly[date] = next.Status
	}
	v.Tallies.Apply(old, next)
}

// Detail returns a copy of the stored detail of date.
func (v *View) Detail(date string) *DayStatusDetail {
	d, ok := v.Details[date]
	if !ok {
		return nil
	}
	return &d
}

//go:generate mockgen -source=aggregate_repo.go -destination=mock/aggregate_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context, userID string) (*View, error)
	Ops(userID string, v *View) ([]kvstore.Op, error)
	Save(ctx context.Context, userID string, v *View) error
}

type repository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context, userID string) (*View, error) {
	v := NewView()
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyStatusDetails), &v.Details); err != nil {
		return nil, err
	}
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyWeeklyStatus), &v.Weekly); err != nil {
		return nil, err
	}
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(userID, kvstore.KeyStatusTally), &v.Tallies)
	if err != nil {
		return nil, err
	}
	if v.Details == nil {
		v.Details = map[string]DayStatusDetail{}
	}
	if v.Weekly == nil {
		v.Weekly = map[string]Code{}
	}
	if !found {
		v.Tallies = Rebuild(v.Details)
	}
	if v.Tallies.Weeks == nil {
		v.Tallies.Weeks = map[string]Tally{}
	}
	if v.Tallies.Months == nil {
		v.Tallies.Months = map[string]Tally{}
	}
	return v, nil
}

// Ops renders v as the writes of statusDetails, weeklyStatus and statusTally.
func (r *repository) Ops(userID string, v *View) ([]kvstore.Op, error) {
	details, err := kvstore.Put(kvstore.UserKey(userID, kvstore.KeyStatusDetails), v.Details)
	if err != nil {
		return nil, err
	}
	weekly, err := kvstore.Put(kvstore.UserKey(userID, kvstore.KeyWeeklyStatus), v.Weekly)
	if err != nil {
		return nil, err
	}
	tally, err := kvstore.Put(kvstore.UserKey(userID, kvstore.KeyStatusTally), v.Tallies)
	if err != nil {
		return nil, err
	}
	return []kvstore.Op{details, weekly, tally}, nil
}

func (r *repository) Save(ctx context.Context, userID string, v *View) error {
	ops, err := r.Ops(userID, v)
	if err != nil {
		return err
	}
	return r.store.Batch(ctx, ops...)
}
