package slots

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) CreateSlot(ctx context.Context, slotModel *models.Slot) (*models.Slot, error) {
	for attempt := 0; attempt < constvars.SwapRequestCodeMaxInsertRetries; attempt++ {
		slotID, err := utils.GenerateShortCode(constvars.SlotPublicIDLength)
		if err != nil {
			return nil, exceptions.ErrShortCodeGenerate(err)
		}
		slotModel.SlotID = slotID

		_, err = r.Collection.InsertOne(ctx, slotModel)
		if err == nil {
			return slotModel, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
	}
	return nil, exceptions.ErrShortCodeExhausted(nil, "slot")
}

func (r *SlotMongoRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]models.Slot, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindBySlotID(ctx context.Context, slotID string) (*models.Slot, error) {
	var slot models.Slot
	err := r.Collection.FindOne(ctx, bson.M{"slotId": slotID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

// FindByOwnerAndSlotID scopes the lookup by both the public identifier
// and the claimed owner, so a slot owned by someone else is
// indistinguishable from a missing one.
func (r *SlotMongoRepository) FindByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (*models.Slot, error) {
	var slot models.Slot
	err := r.Collection.FindOne(ctx, bson.M{"slotId": slotID, "ownerId": ownerID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindSwappableExcludingOwner(ctx context.Context, ownerID string) ([]models.Slot, error) {
	filter := bson.M{
		"status":  constvars.SlotStatusSwappable,
		"ownerId": bson.M{"$ne": ownerID},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) UpdateSlot(ctx context.Context, slotModel *models.Slot) error {
	filter := bson.M{"_id": slotModel.ID}
	update := bson.M{"$set": bson.M{
		"title":       slotModel.Title,
		"description": slotModel.Description,
		"startTime":   slotModel.StartTime,
		"endTime":     slotModel.EndTime,
		"status":      slotModel.Status,
		"ownerId":     slotModel.OwnerID,
		"updatedAt":   slotModel.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) DeleteByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (bool, error) {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"slotId": slotID, "ownerId": ownerID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
