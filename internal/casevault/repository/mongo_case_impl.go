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

func (r *MongoRepository) CreateCase(ctx context.Context, c *model.Case) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	_, err := r.Cases.InsertOne(ctx, c)
	return err
}

func (r *MongoRepository) GetCase(ctx context.Context, id primitive.ObjectID) (*model.Case, error) {
	var c model.Case
	err := r.Cases.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) AddParticipant(ctx context.Context, caseID primitive.ObjectID, p model.Participant) error {
	// The wallet guard in the filter makes duplicate grants lose the race.
	filter := bson.M{
		"_id":                 caseID,
		"participants.wallet": bson.M{"$ne": p.Wallet},
	}
	update := bson.M{
		"$push": bson.M{"participants": p},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.Cases.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrDuplicate
	}
	return nil
}

func (r *MongoRepository) RemoveParticipant(ctx context.Context, caseID primitive.ObjectID, wallet string) error {
	filter := bson.M{
		"_id":                 caseID,
		"participants.wallet": wallet,
	}
	update := bson.M{
		"$pull": bson.M{"participants": bson.M{"wallet": wallet}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.Cases.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) CloseCase(ctx context.Context, caseID primitive.ObjectID) error {
	filter := bson.M{"_id": caseID, "isClosed": false}
	update := bson.M{"$set": bson.M{"isClosed": true, "updatedAt": time.Now()}}

	res, err := r.Cases.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) UpdateMetadata(ctx context.Context, caseID primitive.ObjectID, req model.UpdateCaseMetadataReq) error {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.CourtName != nil {
		set["courtName"] = *req.CourtName
	}

	res, err := r.Cases.UpdateOne(ctx, bson.M{"_id": caseID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindVisibleCases(ctx context.Context, wallet string, req model.ListCasesReq) ([]*model.Case, int64, error) {
	query := bson.M{}
	if req.IsClosed != nil {
		query["isClosed"] = *req.IsClosed
	}

	asAdmin := bson.M{"admin": wallet}
	asParticipant := bson.M{
		"participants": bson.M{
			"$elemMatch": bson.M{
				"wallet":              wallet,
				"permissions.canView": true,
			},
		},
	}

	var or []bson.M
	switch {
	case req.FilterAdmin && !req.FilterParticipant:
		or = []bson.M{asAdmin}
	case req.FilterParticipant && !req.FilterAdmin:
		// Participant-only view excludes cases the wallet administers.
		or = []bson.M{{
			"admin": bson.M{"$ne": wallet},
			"participants": bson.M{
				"$elemMatch": bson.M{
					"wallet":              wallet,
					"permissions.canView": true,
				},
			},
		}}
	default:
		or = []bson.M{asAdmin, asParticipant}
	}
	query["$or"] = or

	total, err := r.Cases.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sortDir := -1
	if req.SortOrder == "asc" {
		sortDir = 1
	}
	sortKey := "createdAt"
	if req.SortBy == "title" {
		sortKey = "title"
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: sortDir}}).
		SetSkip(int64((req.Page - 1) * req.PageSize)).
		SetLimit(int64(req.PageSize))

	cursor, err := r.Cases.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var cases []*model.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

func (r *MongoRepository) TransferAdmin(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error {
	now := time.Now()

	// One document update: the admin swap, the history append and the
	// participant demotion/promotion commit together or not at all.
	filter := bson.M{"_id": caseID, "admin": oldAdmin}
	update := bson.M{
		"$set": bson.M{
			"admin":     newAdmin,
			"updatedAt": now,
			"participants.$[old].permissions": model.Permissions{CanView: true, CanUpload: false},
			"participants.$[new].permissions": model.Permissions{CanView: true, CanUpload: true},
		},
		"$push": bson.M{
			"adminHistory": model.AdminChange{Wallet: newAdmin, ChangedAt: now},
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"old.wallet": oldAdmin},
			bson.M{"new.wallet": newAdmin},
		},
	})

	res, err := r.Cases.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
