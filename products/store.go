package products

import (
	"context"
	"errors"

	"velour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence boundary of the catalog. FindActiveByID
// returns (nil, nil) when no active product matches.
type Store interface {
	FindActive(ctx context.Context, category string, limit int) ([]models.Product, error)
	FindActiveByID(ctx context.Context, productID string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) (int64, error)
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) Store {
	return &mongoStore{coll: coll}
}

func (s *mongoStore) FindActive(ctx context.Context, category string, limit int) ([]models.Product, error) {
	filter := bson.M{"is_active": true}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *mongoStore) FindActiveByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"id": productID, "is_active": true}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *mongoStore) Insert(ctx context.Context, product *models.Product) error {
	_, err := s.coll.InsertOne(ctx, product)
	return err
}

func (s *mongoStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
