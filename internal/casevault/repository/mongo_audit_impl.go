package repository

import (
	"context"
	"time"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppendAccessLog inserts one trail entry. The collection is append-only;
// nothing in this repository updates or deletes.
func (r *MongoRepository) AppendAccessLog(ctx context.Context, entry *model.AccessAuditLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}

	_, err := r.AuditLogs.InsertOne(ctx, entry)
	return err
}

func (r *MongoRepository) FindLogsForDocument(ctx context.Context, docID primitive.ObjectID, docModel string, limit int64) ([]*model.AccessAuditLog, error) {
	if limit <= 0 || limit > model.MaxAuditLogResults {
		limit = model.MaxAuditLogResults
	}

	cursor, err := r.AuditLogs.Find(ctx,
		bson.M{"docId": docID, "docModel": docModel},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.AccessAuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
