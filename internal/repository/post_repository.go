package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ciaan_backend/model"
)

// PostRepository is the post store. Mutating calls are atomic per post:
// concurrent ToggleLike/AddComment against the same post serialize on
// the document and no update is lost. Not-found is reported as
// mongo.ErrNoDocuments regardless of backend.
type PostRepository interface {
	Create(ctx context.Context, post model.Post) (model.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Post, error)
	FindByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error)
	List(ctx context.Context, search string) ([]model.Post, error)
	ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (model.Post, error)
	AddComment(ctx context.Context, postID bson.ObjectID, comment model.Comment) (model.Post, error)
}

type mongoPostRepo struct {
	col *mongo.Collection
}

func NewMongoPostRepo(db *mongo.Database) PostRepository {
	return &mongoPostRepo{col: db.Collection("posts")}
}

func (r *mongoPostRepo) Create(ctx context.Context, post model.Post) (model.Post, error) {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return model.Post{}, err
	}
	post.ID = res.InsertedID.(bson.ObjectID)
	return post, nil
}

func (r *mongoPostRepo) FindByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	return post, err
}

func (r *mongoPostRepo) FindByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error) {
	return r.find(ctx, bson.M{"user": authorID})
}

// TitleFilter builds the feed query for an optional search term:
// case-insensitive substring match on the title, with regex
// metacharacters in the term taken literally.
func TitleFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"title": bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}}
}

func (r *mongoPostRepo) List(ctx context.Context, search string) ([]model.Post, error) {
	return r.find(ctx, TitleFilter(search))
}

func (r *mongoPostRepo) find(ctx context.Context, filter bson.M) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips userID's membership in the liker set and recomputes
// the counter in the same document write, via an aggregation-pipeline
// update. Count and set can therefore never be observed out of sync,
// and two concurrent toggles on one post both land (Mongo serializes
// writes per document). The $max keeps a count from a pre-existing
// out-of-sync document from going negative.
func (r *mongoPostRepo) ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (model.Post, error) {
	liked := bson.M{"$ifNull": bson.A{"$liked", bson.A{}}}
	isMember := bson.M{"$in": bson.A{userID, liked}}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"liked": bson.M{"$cond": bson.A{
				isMember,
				bson.M{"$setDifference": bson.A{liked, bson.A{userID}}},
				bson.M{"$concatArrays": bson.A{liked, bson.A{userID}}},
			}},
			"likes": bson.M{"$cond": bson.A{
				isMember,
				bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{"$likes", 1}}}},
				bson.M{"$add": bson.A{"$likes", 1}},
			}},
			"updatedAt": time.Now().UTC(),
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&updated)
	return updated, err
}

// AddComment appends to the embedded comment array. $push keeps
// insertion order, which is the display order.
func (r *mongoPostRepo) AddComment(ctx context.Context, postID bson.ObjectID, comment model.Comment) (model.Post, error) {
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&updated)
	return updated, err
}
