package mongodb

import (
	"context"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDonationRepository is the MongoDB-backed donation store.
type MongoDonationRepository struct {
	collection *mongo.Collection
}

func NewMongoDonationRepository(collection *mongo.Collection) *MongoDonationRepository {
	return &MongoDonationRepository{collection: collection}
}

// check if MongoDonationRepository implements contract.IDonationRepository at compile time
var _ contract.IDonationRepository = (*MongoDonationRepository)(nil)

func (r *MongoDonationRepository) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	_, err := r.collection.InsertOne(ctx, donation)
	return err
}

func (r *MongoDonationRepository) GetDonationByID(ctx context.Context, id string) (*entity.Donation, error) {
	var donation entity.Donation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *MongoDonationRepository) ListAll(ctx context.Context) ([]*entity.Donation, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoDonationRepository) ListByDonorEmail(ctx context.Context, email string) ([]*entity.Donation, error) {
	return r.list(ctx, bson.M{"donor.email": email})
}

func (r *MongoDonationRepository) ListByTypes(ctx context.Context, types []entity.DonationType) ([]*entity.Donation, error) {
	return r.list(ctx, bson.M{"type": bson.M{"$in": types}})
}

// MarkCollected transitions a pending donation to collected with a
// status-filtered FindOneAndUpdate, so the transition happens at most once
// even under concurrent callers.
func (r *MongoDonationRepository) MarkCollected(ctx context.Context, id string, collector entity.CollectorSnapshot, at time.Time) (*entity.Donation, error) {
	filter := bson.M{"_id": id, "status": entity.DonationStatusPending}
	update := bson.M{"$set": bson.M{
		"status":       entity.DonationStatusCollected,
		"collected_by": collector,
		"collected_at": at,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var donation entity.Donation
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&donation)
	if err == nil {
		return &donation, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// The CAS missed: distinguish an absent donation from one already collected.
	err = r.collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return nil, entity.ErrDonationNotFound
	}
	if err != nil {
		return nil, err
	}
	return nil, entity.ErrAlreadyCollected
}

func (r *MongoDonationRepository) list(ctx context.Context, filter bson.M) ([]*entity.Donation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []*entity.Donation
	for cursor.Next(ctx) {
		var donation entity.Donation
		if err := cursor.Decode(&donation); err != nil {
			return nil, err
		}
		donations = append(donations, &donation)
	}
	return donations, cursor.Err()
}
