package repository

import (
	"context"
	"regexp"
	"time"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateDocument(ctx context.Context, d *model.CaseDocument) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}

	_, err := r.CaseDocs.InsertOne(ctx, d)
	return err
}

func (r *MongoRepository) GetDocument(ctx context.Context, caseID, docID primitive.ObjectID) (*model.CaseDocument, error) {
	var d model.CaseDocument
	err := r.CaseDocs.FindOne(ctx, bson.M{
		"_id":       docID,
		"caseId":    caseID,
		"isDeleted": false,
	}).Decode(&d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MongoRepository) UpsertAccessEntry(ctx context.Context, docID primitive.ObjectID, entry model.AccessEntry) error {
	now := time.Now()

	// Positional update when the wallet already holds an entry.
	res, err := r.CaseDocs.UpdateOne(ctx,
		bson.M{"_id": docID, "isDeleted": false, "accessControl.wallet": entry.Wallet},
		bson.M{"$set": bson.M{
			"accessControl.$.canView":   entry.CanView,
			"accessControl.$.canDelete": entry.CanDelete,
			"updatedAt":                 now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Insert path, guarded so a racing upsert cannot double the entry.
	res, err = r.CaseDocs.UpdateOne(ctx,
		bson.M{
			"_id":       docID,
			"isDeleted": false,
			"accessControl": bson.M{
				"$not": bson.M{"$elemMatch": bson.M{"wallet": entry.Wallet}},
			},
		},
		bson.M{
			"$push": bson.M{"accessControl": entry},
			"$set":  bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) RemoveAccessEntry(ctx context.Context, docID primitive.ObjectID, wallet string) error {
	filter := bson.M{
		"_id":                  docID,
		"isDeleted":            false,
		"accessControl.wallet": wallet,
	}
	update := bson.M{
		"$pull": bson.M{"accessControl": bson.M{"wallet": wallet}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.CaseDocs.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindDocuments(ctx context.Context, caseID primitive.ObjectID, wallet string, req model.ListCaseDocsReq) ([]*model.CaseDocument, int64, error) {
	elem := bson.M{"wallet": wallet, "canView": true}
	if req.AccessFilter == "canDelete" {
		elem["canDelete"] = true
	}

	query := bson.M{
		"caseId":        caseID,
		"isDeleted":     false,
		"accessControl": bson.M{"$elemMatch": elem},
	}

	if req.Search != "" {
		query["title"] = bson.M{
			"$regex":   regexp.QuoteMeta(req.Search),
			"$options": "i",
		}
	}

	if req.FilterType != model.FileGroupAll {
		query["fileType"] = bson.M{"$in": model.MimeGroups[req.FilterType]}
	}

	total, err := r.CaseDocs.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch req.SortBy {
	case "oldest":
		sort = bson.D{{Key: "createdAt", Value: 1}}
	case "titleAsc":
		sort = bson.D{{Key: "title", Value: 1}}
	case "titleDesc":
		sort = bson.D{{Key: "title", Value: -1}}
	case "sizeAsc":
		sort = bson.D{{Key: "fileSize", Value: 1}}
	case "sizeDesc":
		sort = bson.D{{Key: "fileSize", Value: -1}}
	}

	findOptions := options.Find().
		SetCollation(&options.Collation{Locale: "en", Strength: 2}).
		SetSort(sort).
		SetSkip(int64((req.Page - 1) * req.Limit)).
		SetLimit(int64(req.Limit))

	cursor, err := r.CaseDocs.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []*model.CaseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *MongoRepository) SoftDeleteDocument(ctx context.Context, docID primitive.ObjectID) error {
	filter := bson.M{"_id": docID, "isDeleted": false}
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}

	res, err := r.CaseDocs.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CascadeAdminTransfer runs three state-targeted passes. Each pass is a plain
// $set/$push against a filter describing the pre-state, so re-running a
// partially applied cascade converges to the same end state.
func (r *MongoRepository) CascadeAdminTransfer(ctx context.Context, caseID primitive.ObjectID, oldAdmin, newAdmin string) error {
	now := time.Now()

	// 1. Downgrade the departing admin to view-only wherever present.
	_, err := r.CaseDocs.UpdateMany(ctx,
		bson.M{"caseId": caseID, "isDeleted": false, "accessControl.wallet": oldAdmin},
		bson.M{"$set": bson.M{
			"accessControl.$.canView":   true,
			"accessControl.$.canDelete": false,
			"updatedAt":                 now,
		}},
	)
	if err != nil {
		return err
	}

	// 2. Upgrade the new admin's existing entries to full access.
	_, err = r.CaseDocs.UpdateMany(ctx,
		bson.M{"caseId": caseID, "isDeleted": false, "accessControl.wallet": newAdmin},
		bson.M{"$set": bson.M{
			"accessControl.$.canView":   true,
			"accessControl.$.canDelete": true,
			"updatedAt":                 now,
		}},
	)
	if err != nil {
		return err
	}

	// 3. Insert a full-access entry on documents the new admin is absent from.
	_, err = r.CaseDocs.UpdateMany(ctx,
		bson.M{
			"caseId":    caseID,
			"isDeleted": false,
			"accessControl": bson.M{
				"$not": bson.M{"$elemMatch": bson.M{"wallet": newAdmin}},
			},
		},
		bson.M{
			"$push": bson.M{"accessControl": model.AccessEntry{
				Wallet:    newAdmin,
				CanView:   true,
				CanDelete: true,
			}},
			"$set": bson.M{"updatedAt": now},
		},
	)
	return err
}
