package demodata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/databases"
)

// Step records one finished stage of a reset
type Step struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// StepError reports which stage of a reset failed and which stages had
// already been applied. The store is left in whatever state those stages
// produced; nothing is rolled back.
type StepError struct {
	Step      string
	Completed []Step
	Err       error
}

func (e *StepError) Error() string {
	done := make([]string, len(e.Completed))
	for i, s := range e.Completed {
		done[i] = s.Name
	}
	return fmt.Sprintf("%s failed after [%s]: %v", e.Step, strings.Join(done, ", "), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Seeder wipes every collection and installs the demo dataset. Stages run
// one after another with no transaction around them.
type Seeder struct {
	Stores databases.Stores
	Now    func() time.Time
	NewID  func() string
}

// NewSeeder returns a seeder with wall clock time and random uuids
func NewSeeder(stores databases.Stores) *Seeder {
	return &Seeder{
		Stores: stores,
		Now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		NewID:  uuid.NewString,
	}
}

// Reset deletes all users, reports, bins, schedules and drivers, then
// inserts the demo dataset. It stops at the first failing stage.
func (s *Seeder) Reset(ctx context.Context) ([]Step, error) {
	data := NewDataset(s.Now(), s.NewID)

	everything := bson.M{}
	stages := []struct {
		name string
		run  func() (int64, error)
	}{
		{"clear users", func() (int64, error) { return s.Stores.Users.DeleteMany(ctx, everything) }},
		{"clear reports", func() (int64, error) { return s.Stores.Reports.DeleteMany(ctx, everything) }},
		{"clear bins", func() (int64, error) { return s.Stores.Bins.DeleteMany(ctx, everything) }},
		{"clear schedules", func() (int64, error) { return s.Stores.Schedules.DeleteMany(ctx, everything) }},
		{"clear drivers", func() (int64, error) { return s.Stores.Drivers.DeleteMany(ctx, everything) }},
		{"seed users", func() (int64, error) { return asInt64(s.Stores.Users.InsertMany(ctx, data.Users)) }},
		{"seed reports", func() (int64, error) { return asInt64(s.Stores.Reports.InsertMany(ctx, data.Reports)) }},
		{"seed bins", func() (int64, error) { return asInt64(s.Stores.Bins.InsertMany(ctx, data.Bins)) }},
		{"seed drivers", func() (int64, error) { return asInt64(s.Stores.Drivers.InsertMany(ctx, data.Drivers)) }},
	}

	completed := make([]Step, 0, len(stages))
	for _, stage := range stages {
		n, err := stage.run()
		if err != nil {
			zap.S().Errorw("demo reset stopped", "step", stage.name, "completed", len(completed), "error", err)
			return completed, &StepError{Step: stage.name, Completed: completed, Err: err}
		}
		completed = append(completed, Step{Name: stage.name, Count: n})
		zap.S().Debugw("demo reset step done", "step", stage.name, "count", n)
	}

	return completed, nil
}

func asInt64(n int, err error) (int64, error) {
	return int64(n), err
}
