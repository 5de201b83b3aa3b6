package databases

// go generate: mockery --name BinDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/t2t/waste-api/models"
)

const binName = "bins"

// BinDatabase contains the methods to use with the bin database
type BinDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Bin, error)
	InsertMany(ctx context.Context, bins []models.Bin) (int, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type binDatabase struct {
	db DatabaseHelper
}

// NewBinDatabase initializes a new instance of bin database with the provided db connection
func NewBinDatabase(db DatabaseHelper) BinDatabase {
	return &binDatabase{
		db: db,
	}
}

func (b *binDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Bin, error) {
	var bins []models.Bin
	cr, err := b.db.Collection(binName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if err = cr.All(ctx, &bins); err != nil {
		return nil, err
	}
	return bins, nil
}

func (b *binDatabase) InsertMany(ctx context.Context, bins []models.Bin) (int, error) {
	docs := make([]interface{}, len(bins))
	for i := range bins {
		docs[i] = bins[i]
	}
	return b.db.Collection(binName).InsertMany(ctx, docs)
}

func (b *binDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return b.db.Collection(binName).DeleteMany(ctx, filter)
}

func (b *binDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return b.db.Collection(binName).CountDocuments(ctx, filter)
}
