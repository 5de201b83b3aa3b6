package databases

// go generate: mockery --name DriverDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/t2t/waste-api/models"
)

const driverName = "drivers"

// DriverDatabase contains the methods to use with the driver database
type DriverDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Driver, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Driver, error)
	InsertMany(ctx context.Context, drivers []models.Driver) (int, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type driverDatabase struct {
	db DatabaseHelper
}

// NewDriverDatabase initializes a new instance of driver database with the provided db connection
func NewDriverDatabase(db DatabaseHelper) DriverDatabase {
	return &driverDatabase{
		db: db,
	}
}

func (d *driverDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Driver, error) {
	driver := &models.Driver{}
	err := d.db.Collection(driverName).FindOne(ctx, filter, opts...).Decode(driver)
	if err != nil {
		return nil, err
	}
	return driver, nil
}

func (d *driverDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Driver, error) {
	var drivers []models.Driver
	cr, err := d.db.Collection(driverName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if err = cr.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (d *driverDatabase) InsertMany(ctx context.Context, drivers []models.Driver) (int, error) {
	docs := make([]interface{}, len(drivers))
	for i := range drivers {
		docs[i] = drivers[i]
	}
	return d.db.Collection(driverName).InsertMany(ctx, docs)
}

func (d *driverDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return d.db.Collection(driverName).UpdateOne(ctx, filter, update)
}

func (d *driverDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return d.db.Collection(driverName).DeleteMany(ctx, filter)
}

func (d *driverDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return d.db.Collection(driverName).CountDocuments(ctx, filter)
}
