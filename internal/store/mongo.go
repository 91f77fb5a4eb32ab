package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crmbackend/internal/models"
)

// MongoStore persists products in a single collection with a userId field,
// for deployments that need inventory to survive restarts.
type MongoStore struct {
	products *mongo.Collection
}

func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

func NewMongoStore(db *mongo.Database) (*MongoStore, error) {
	products := db.Collection("products")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return &MongoStore{products: products}, nil
}

func (s *MongoStore) List(ctx context.Context, userID int) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.products.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Product{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, userID int, id string) (models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *MongoStore) Create(ctx context.Context, userID int, p models.Product) (models.Product, error) {
	p.UserID = userID
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *MongoStore) Update(ctx context.Context, userID int, id string, p models.Product) (models.Product, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return models.Product{}, err
	}

	p.ID = existing.ID
	p.UserID = userID
	p.CreatedAt = existing.CreatedAt

	res, err := s.products.ReplaceOne(ctx, bson.M{"_id": id, "userId": userID}, p)
	if err != nil {
		return models.Product{}, err
	}
	if res.MatchedCount == 0 {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MongoStore) Delete(ctx context.Context, userID int, id string) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) BulkDelete(ctx context.Context, userID int, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.products.DeleteMany(ctx, bson.M{
		"userId": userID,
		"_id":    bson.M{"$in": ids},
	})
	if err != nil {
		return 0, err
	}
	return int(res.DeletedCount), nil
}

func (s *MongoStore) Statistics(ctx context.Context, userID int) (models.Statistics, error) {
	products, err := s.List(ctx, userID)
	if err != nil {
		return models.Statistics{}, err
	}
	return models.ComputeStatistics(products), nil
}
