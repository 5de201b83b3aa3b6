package databases

// go generate: mockery --name ScheduleDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/t2t/waste-api/models"
)

const scheduleName = "schedules"

// ScheduleDatabase contains the methods to use with the schedule database
type ScheduleDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Schedule, error)
	InsertOne(ctx context.Context, schedule models.Schedule) (InsertOneResultHelper, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type scheduleDatabase struct {
	db DatabaseHelper
}

// NewScheduleDatabase initializes a new instance of schedule database with the provided db connection
func NewScheduleDatabase(db DatabaseHelper) ScheduleDatabase {
	return &scheduleDatabase{
		db: db,
	}
}

func (s *scheduleDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Schedule, error) {
	var schedules []models.Schedule
	cr, err := s.db.Collection(scheduleName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if err = cr.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *scheduleDatabase) InsertOne(ctx context.Context, schedule models.Schedule) (InsertOneResultHelper, error) {
	return s.db.Collection(scheduleName).InsertOne(ctx, schedule)
}

func (s *scheduleDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return s.db.Collection(scheduleName).DeleteMany(ctx, filter)
}

func (s *scheduleDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return s.db.Collection(scheduleName).CountDocuments(ctx, filter)
}
