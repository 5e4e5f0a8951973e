package orders

import (
	"context"
	"errors"

	"velour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence boundary of order placement. FindByID
// filters by owner as well as id, so a foreign order reads as absent.
type Store interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID string, limit int) ([]models.Order, error)
	FindByID(ctx context.Context, orderID, userID string) (*models.Order, error)
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) Store {
	return &mongoStore{coll: coll}
}

func (s *mongoStore) Insert(ctx context.Context, order *models.Order) error {
	_, err := s.coll.InsertOne(ctx, order)
	return err
}

func (s *mongoStore) FindByUser(ctx context.Context, userID string, limit int) ([]models.Order, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *mongoStore) FindByID(ctx context.Context, orderID, userID string) (*models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"id": orderID, "user_id": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
