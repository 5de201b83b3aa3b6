package demodata

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// TestResetAgainstMongo runs a full reset against a real server. Set
// MONGO_TEST_URI to run it; the target database is dropped of its
// contents.
func TestResetAgainstMongo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live mongo test in short mode")
	}
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conf := &config.Config{URL: uri, DatabaseName: "waste_management_test", QueryTimeout: 5 * time.Second}
	client, err := databases.NewClient(ctx, conf)
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()
	require.NoError(t, client.Ping(ctx))

	stores := databases.NewStores(databases.NewDatabase(conf, client))

	// twice, to show a reset leaves no residue from the previous one
	for i := 0; i < 2; i++ {
		_, err := NewSeeder(stores).Reset(ctx)
		require.NoError(t, err)
	}

	reports, err := stores.Reports.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	resolved, err := stores.Reports.CountDocuments(ctx, bson.M{"status": models.StatusResolved})
	require.NoError(t, err)
	bins, err := stores.Bins.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	high, err := stores.Bins.CountDocuments(ctx, bson.M{"current_level": bson.M{"$gte": models.BinHighPriorityLevel}})
	require.NoError(t, err)
	schedules, err := stores.Schedules.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)

	overview := models.NewAnalyticsOverview(reports, resolved, bins, high)
	assert.Equal(t, models.AnalyticsOverview{
		TotalReports:         3,
		ResolvedReports:      1,
		PendingReports:       2,
		ActiveBins:           3,
		HighPriorityBins:     2,
		CollectionEfficiency: 33.3,
	}, overview)
	assert.Equal(t, int64(0), schedules)

	citizen, err := stores.Users.FindOne(ctx, bson.M{"email": "citizen@demo.com", "role": models.RoleCitizen})
	require.NoError(t, err)
	assert.Equal(t, 350, citizen.EcoPoints)

	unavailable, err := stores.Drivers.Find(ctx, bson.M{"availability": false}, databases.ListOptions())
	require.NoError(t, err)
	if assert.Len(t, unavailable, 1) && assert.NotNil(t, unavailable[0].CurrentRoute) {
		assert.Equal(t, "route-1", *unavailable[0].CurrentRoute)
	}
}
