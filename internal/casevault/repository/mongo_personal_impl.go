package repository

import (
	"context"
	"time"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreatePersonalDocument(ctx context.Context, d *model.PersonalDocument) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}

	_, err := r.PersonalDocs.InsertOne(ctx, d)
	return err
}

func (r *MongoRepository) GetPersonalDocument(ctx context.Context, docID primitive.ObjectID) (*model.PersonalDocument, error) {
	var d model.PersonalDocument
	err := r.PersonalDocs.FindOne(ctx, bson.M{
		"_id":       docID,
		"isDeleted": false,
	}).Decode(&d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MongoRepository) FindOwnedDocuments(ctx context.Context, owner string) ([]*model.PersonalDocument, error) {
	cursor, err := r.PersonalDocs.Find(ctx,
		bson.M{"owner": owner, "isDeleted": false},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.PersonalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MongoRepository) FindSharedDocuments(ctx context.Context, wallet string) ([]*model.PersonalDocument, error) {
	cursor, err := r.PersonalDocs.Find(ctx,
		bson.M{
			"sharedWith": bson.M{"$elemMatch": bson.M{"wallet": wallet}},
			"isDeleted":  false,
		},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.PersonalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MongoRepository) AddShare(ctx context.Context, docID primitive.ObjectID, entry model.SharedEntry) error {
	filter := bson.M{
		"_id":               docID,
		"isDeleted":         false,
		"sharedWith.wallet": bson.M{"$ne": entry.Wallet},
	}
	update := bson.M{
		"$push": bson.M{"sharedWith": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.PersonalDocs.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrDuplicate
	}
	return nil
}

func (r *MongoRepository) RemoveShare(ctx context.Context, docID primitive.ObjectID, wallet string) error {
	filter := bson.M{
		"_id":               docID,
		"isDeleted":         false,
		"sharedWith.wallet": wallet,
	}
	update := bson.M{
		"$pull": bson.M{"sharedWith": bson.M{"wallet": wallet}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.PersonalDocs.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) SoftDeletePersonalDocument(ctx context.Context, docID primitive.ObjectID) error {
	filter := bson.M{"_id": docID, "isDeleted": false}
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}

	res, err := r.PersonalDocs.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) SetLinkedCase(ctx context.Context, docID primitive.ObjectID, caseID *primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if caseID != nil {
		update["$set"].(bson.M)["linkedCaseId"] = *caseID
	} else {
		update["$unset"] = bson.M{"linkedCaseId": ""}
	}

	res, err := r.PersonalDocs.UpdateOne(ctx, bson.M{"_id": docID, "isDeleted": false}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
