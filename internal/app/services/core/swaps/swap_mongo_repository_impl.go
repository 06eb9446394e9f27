package swaps

import (
	"context"

	"slotswap-service/internal/app/contracts"
	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/constvars"
	"slotswap-service/internal/pkg/exceptions"
	"slotswap-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SwapMongoRepository struct {
	Collection *mongo.Collection
}

func NewSwapMongoRepository(db *mongo.Client, dbName string) contracts.SwapRequestRepository {
	return &SwapMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSwapRequests),
	}
}

// CreateSwapRequest relies on the unique index on requestCode: generate,
// insert, and regenerate on a duplicate-key rejection.
func (r *SwapMongoRepository) CreateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) (*models.SwapRequest, error) {
	for attempt := 0; attempt < constvars.SwapRequestCodeMaxInsertRetries; attempt++ {
		requestCode, err := utils.GenerateShortCode(constvars.SwapRequestCodeLength)
		if err != nil {
			return nil, exceptions.ErrShortCodeGenerate(err)
		}
		requestModel.RequestCode = requestCode

		_, err = r.Collection.InsertOne(ctx, requestModel)
		if err == nil {
			return requestModel, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
	}
	return nil, exceptions.ErrShortCodeExhausted(nil, "swap request")
}

func (r *SwapMongoRepository) FindByRequestCode(ctx context.Context, requestCode string) (*models.SwapRequest, error) {
	var request models.SwapRequest
	err := r.Collection.FindOne(ctx, bson.M{"requestCode": requestCode}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *SwapMongoRepository) FindByRequesterID(ctx context.Context, requesterID string) ([]models.SwapRequest, error) {
	return r.findByFilter(ctx, bson.M{"requesterId": requesterID})
}

func (r *SwapMongoRepository) FindByReceiverID(ctx context.Context, receiverID string) ([]models.SwapRequest, error) {
	return r.findByFilter(ctx, bson.M{"receiverId": receiverID})
}

func (r *SwapMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.SwapRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var swapRequests []models.SwapRequest
	if err := cursor.All(ctx, &swapRequests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return swapRequests, nil
}

func (r *SwapMongoRepository) UpdateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) error {
	filter := bson.M{"_id": requestModel.ID}
	update := bson.M{"$set": bson.M{
		"status":    requestModel.Status,
		"updatedAt": requestModel.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
