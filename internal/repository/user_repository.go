package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ciaan_backend/model"
)

type UserRepository interface {
	Insert(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	// FindByUsername matches the exact username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// FindManyByID batch-fetches users for read-time enrichment.
	FindManyByID(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error)
	SetProfilePicture(ctx context.Context, id bson.ObjectID, path string) error
}

type mongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{col: db.Collection("users")}
}

func (r *mongoUserRepo) Insert(ctx context.Context, user model.User) (model.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *mongoUserRepo) FindByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

func (r *mongoUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	filter := bson.M{"username": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(username) + "$",
		"$options": "i",
	}}
	var user model.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	return user, err
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *mongoUserRepo) FindManyByID(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	users := make(map[bson.ObjectID]model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.User
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	for _, u := range results {
		users[u.ID] = u
	}
	return users, nil
}

func (r *mongoUserRepo) SetProfilePicture(ctx context.Context, id bson.ObjectID, path string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"profilePicture": path}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
