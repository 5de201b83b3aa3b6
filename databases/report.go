package databases

// go generate: mockery --name ReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/t2t/waste-api/models"
)

const reportName = "reports"

// ReportDatabase contains the methods to use with the report database
type ReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.WasteReport, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.WasteReport, error)
	InsertOne(ctx context.Context, report models.WasteReport) (InsertOneResultHelper, error)
	InsertMany(ctx context.Context, reports []models.WasteReport) (int, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (c *reportDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.WasteReport, error) {
	report := &models.WasteReport{}
	err := c.db.Collection(reportName).FindOne(ctx, filter, opts...).Decode(report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.WasteReport, error) {
	var reports []models.WasteReport
	cr, err := c.db.Collection(reportName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if err = cr.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *reportDatabase) InsertOne(ctx context.Context, report models.WasteReport) (InsertOneResultHelper, error) {
	return c.db.Collection(reportName).InsertOne(ctx, report)
}

func (c *reportDatabase) InsertMany(ctx context.Context, reports []models.WasteReport) (int, error) {
	docs := make([]interface{}, len(reports))
	for i := range reports {
		docs[i] = reports[i]
	}
	return c.db.Collection(reportName).InsertMany(ctx, docs)
}

func (c *reportDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return c.db.Collection(reportName).UpdateOne(ctx, filter, update)
}

func (c *reportDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(reportName).DeleteMany(ctx, filter)
}

func (c *reportDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(reportName).CountDocuments(ctx, filter)
}
