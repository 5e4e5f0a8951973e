package cart

import (
	"context"
	"errors"
	"time"

	"velour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the persistence boundary of the cart aggregator. Find
// returns (nil, nil) when the user has no cart yet.
type Store interface {
	Find(ctx context.Context, userID string) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	SetItems(ctx context.Context, userID string, items []models.CartItem, total float64) error
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// MongoStore is the carts collection wrapper. It also serves order
// placement, which clears carts through the same SetItems write.
type MongoStore struct {
	coll *mongo.Collection
}

func (s *MongoStore) Find(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *MongoStore) Insert(ctx context.Context, cart *models.Cart) error {
	_, err := s.coll.InsertOne(ctx, cart)
	return err
}

func (s *MongoStore) SetItems(ctx context.Context, userID string, items []models.CartItem, total float64) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"items":        items,
			"total_amount": total,
			"updated_at":   time.Now().UTC(),
		}},
	)
	return err
}

// Clear empties the user's cart; used after order placement.
func (s *MongoStore) Clear(ctx context.Context, userID string) error {
	return s.SetItems(ctx, userID, []models.CartItem{}, 0)
}
