package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
)

// MongoDispatchLogRepository implements the DispatchLogRepository interface
type MongoDispatchLogRepository struct {
	collection *mongo.Collection
}

// NewMongoDispatchLogRepository creates a new MongoDB dispatch log repository
func NewMongoDispatchLogRepository(db *mongo.Database) repository.DispatchLogRepository {
	collection := db.Collection("emailDispatches")

	// Create indexes for better performance
	ctx := context.Background()

	pnrIndex := mongo.IndexModel{
		Keys: bson.M{"pnr": 1},
	}

	flightIndex := mongo.IndexModel{
		Keys: bson.M{"flightId": 1},
	}

	// Index on sentAt for sorting and retention jobs
	sentAtIndex := mongo.IndexModel{
		Keys: bson.M{"sentAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		pnrIndex,
		flightIndex,
		sentAtIndex,
	})

	return &MongoDispatchLogRepository{
		collection: collection,
	}
}

// Record inserts one dispatch attempt
func (r *MongoDispatchLogRepository) Record(ctx context.Context, dispatch *entity.EmailDispatch) error {
	_, err := r.collection.InsertOne(ctx, dispatch)
	return err
}
