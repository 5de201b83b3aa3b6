package demodata

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/databases/mocks"
	"github.com/t2t/waste-api/models"
)

var seedTime = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
}

type storeMocks struct {
	users     *mocks.UserDatabase
	reports   *mocks.ReportDatabase
	bins      *mocks.BinDatabase
	schedules *mocks.ScheduleDatabase
	drivers   *mocks.DriverDatabase
}

func newStoreMocks(t *testing.T) (storeMocks, databases.Stores) {
	m := storeMocks{
		users:     mocks.NewUserDatabase(t),
		reports:   mocks.NewReportDatabase(t),
		bins:      mocks.NewBinDatabase(t),
		schedules: mocks.NewScheduleDatabase(t),
		drivers:   mocks.NewDriverDatabase(t),
	}
	return m, databases.Stores{
		Users:     m.users,
		Reports:   m.reports,
		Bins:      m.bins,
		Schedules: m.schedules,
		Drivers:   m.drivers,
	}
}

func newTestSeeder(stores databases.Stores) *Seeder {
	return &Seeder{
		Stores: stores,
		Now:    func() time.Time { return seedTime },
		NewID:  sequentialIDs(),
	}
}

func TestNewDataset(t *testing.T) {
	data := NewDataset(seedTime, sequentialIDs())

	require.Len(t, data.Users, 3)
	require.Len(t, data.Reports, 3)
	require.Len(t, data.Bins, 3)
	require.Len(t, data.Drivers, 3)

	roles := map[models.Role]bool{}
	for _, u := range data.Users {
		roles[u.Role] = true
	}
	assert.Len(t, roles, 3)
	assert.Equal(t, 350, data.Users[0].EcoPoints)

	statuses := map[models.ReportStatus]int{}
	for _, r := range data.Reports {
		statuses[r.Status]++
		assert.Equal(t, data.Users[0].ID, r.UserID)
		assert.Equal(t, r.Status == models.StatusResolved, r.ResolvedAt != nil)
	}
	assert.Equal(t, map[models.ReportStatus]int{
		models.StatusReported:   1,
		models.StatusInProgress: 1,
		models.StatusResolved:   1,
	}, statuses)
	assert.Equal(t, data.Users[1].ID, *data.Reports[1].AssignedWorker)

	assert.False(t, data.Drivers[2].Availability)
	assert.Equal(t, "route-1", *data.Drivers[2].CurrentRoute)
	assert.Nil(t, data.Drivers[0].CurrentRoute)

	ids := map[string]bool{}
	for _, u := range data.Users {
		ids[u.ID] = true
	}
	for _, r := range data.Reports {
		ids[r.ID] = true
	}
	for _, b := range data.Bins {
		ids[b.ID] = true
	}
	for _, d := range data.Drivers {
		ids[d.ID] = true
	}
	assert.Len(t, ids, 12)
}

// The overview computed over a freshly seeded store
func TestNewDatasetAnalytics(t *testing.T) {
	data := NewDataset(seedTime, sequentialIDs())

	var resolved, highPriority, alerts int64
	for _, r := range data.Reports {
		if r.Status == models.StatusResolved {
			resolved++
		}
	}
	for _, b := range data.Bins {
		if b.CurrentLevel >= models.BinHighPriorityLevel {
			highPriority++
		}
		if b.CurrentLevel >= models.BinAlertLevel {
			alerts++
		}
	}

	o := models.NewAnalyticsOverview(int64(len(data.Reports)), resolved, int64(len(data.Bins)), highPriority)
	assert.Equal(t, models.AnalyticsOverview{
		TotalReports:         3,
		ResolvedReports:      1,
		PendingReports:       2,
		ActiveBins:           3,
		HighPriorityBins:     2,
		CollectionEfficiency: 33.3,
	}, o)
	assert.Equal(t, int64(2), alerts)
}

func TestSeeder_Reset(t *testing.T) {
	m, stores := newStoreMocks(t)
	everything := bson.M{}

	m.users.On("DeleteMany", mock.Anything, everything).Return(int64(7), nil)
	m.reports.On("DeleteMany", mock.Anything, everything).Return(int64(2), nil)
	m.bins.On("DeleteMany", mock.Anything, everything).Return(int64(0), nil)
	m.schedules.On("DeleteMany", mock.Anything, everything).Return(int64(4), nil)
	m.drivers.On("DeleteMany", mock.Anything, everything).Return(int64(1), nil)

	var seededUsers []models.User
	m.users.On("InsertMany", mock.Anything, mock.Anything).Return(3, nil).Run(func(args mock.Arguments) {
		seededUsers = args.Get(1).([]models.User)
	})
	m.reports.On("InsertMany", mock.Anything, mock.Anything).Return(3, nil)
	m.bins.On("InsertMany", mock.Anything, mock.Anything).Return(3, nil)
	m.drivers.On("InsertMany", mock.Anything, mock.Anything).Return(3, nil)

	steps, err := newTestSeeder(stores).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{"clear users", 7},
		{"clear reports", 2},
		{"clear bins", 0},
		{"clear schedules", 4},
		{"clear drivers", 1},
		{"seed users", 3},
		{"seed reports", 3},
		{"seed bins", 3},
		{"seed drivers", 3},
	}, steps)
	assert.Len(t, seededUsers, 3)
	assert.Equal(t, "citizen@demo.com", seededUsers[0].Email)
	m.schedules.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestSeeder_ResetStopsAtFailedStep(t *testing.T) {
	m, stores := newStoreMocks(t)
	everything := bson.M{}

	m.users.On("DeleteMany", mock.Anything, everything).Return(int64(3), nil)
	m.reports.On("DeleteMany", mock.Anything, everything).Return(int64(3), nil)
	m.bins.On("DeleteMany", mock.Anything, everything).Return(int64(0), errors.New("mocked-error"))

	steps, err := newTestSeeder(stores).Reset(context.Background())

	require.Error(t, err)
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "clear bins", stepErr.Step)
	assert.Len(t, steps, 2)
	assert.EqualError(t, err, "clear bins failed after [clear users, clear reports]: mocked-error")

	m.drivers.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}
