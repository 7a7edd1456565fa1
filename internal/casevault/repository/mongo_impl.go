package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements every store over one database. Collections map
// 1:1 to the owning components.
type MongoRepository struct {
	Cases        *mongo.Collection
	CaseDocs     *mongo.Collection
	PersonalDocs *mongo.Collection
	AuditLogs    *mongo.Collection
	Users        *mongo.Collection
	Client       *mongo.Client
}

type CollectionNames struct {
	Cases        string
	CaseDocs     string
	PersonalDocs string
	AuditLogs    string
	Users        string
}

func NewMongoRepository(db *mongo.Database, names CollectionNames) *MongoRepository {
	return &MongoRepository{
		Cases:        db.Collection(names.Cases),
		CaseDocs:     db.Collection(names.CaseDocs),
		PersonalDocs: db.Collection(names.PersonalDocs),
		AuditLogs:    db.Collection(names.AuditLogs),
		Users:        db.Collection(names.Users),
		Client:       db.Client(),
	}
}

func (r *MongoRepository) EnsureCaseIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "admin", Value: 1}},
			Options: options.Index().SetName("idx_case_admin"),
		},
		{
			Keys:    bson.D{{Key: "participants.wallet", Value: 1}},
			Options: options.Index().SetName("idx_case_participant_wallet"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_case_created_at"),
		},
	}
	_, err := r.Cases.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) EnsureDocumentIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "caseId", Value: 1},
				{Key: "isDeleted", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_casedoc_case_query"),
		},
		{
			Keys:    bson.D{{Key: "accessControl.wallet", Value: 1}},
			Options: options.Index().SetName("idx_casedoc_acl_wallet"),
		},
	}
	_, err := r.CaseDocs.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) EnsurePersonalIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "owner", Value: 1},
				{Key: "isDeleted", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_personal_owner_query"),
		},
		{
			Keys:    bson.D{{Key: "sharedWith.wallet", Value: 1}},
			Options: options.Index().SetName("idx_personal_shared_wallet"),
		},
	}
	_, err := r.PersonalDocs.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) EnsureAuditIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "docId", Value: 1},
				{Key: "docModel", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_doc_query"),
		},
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_timestamp"),
		},
	}
	_, err := r.AuditLogs.Indexes().CreateMany(ctx, indexes)
	return err
}
