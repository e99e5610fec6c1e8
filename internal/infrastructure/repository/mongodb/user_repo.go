package mongodb

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository is the MongoDB-backed user store, used when MONGODB_URI
// is configured.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// check if MongoUserRepository implements contract.IUserRepository at compile time
var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	// Email uniqueness check and insert. A unique index on email backs this up
	// against races between two concurrent signups.
	err := r.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return entity.ErrDuplicateEmail
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmailAndRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email, "role": role}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
