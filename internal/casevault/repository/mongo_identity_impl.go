package repository

import (
	"context"
	"errors"

	"casevault/internal/casevault/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindByWallet returns nil (no error) when no identity record matches; a
// missing identity is display data, not a failure.
func (r *MongoRepository) FindByWallet(ctx context.Context, wallet string) (*model.UserIdentity, error) {
	var u model.UserIdentity
	err := r.Users.FindOne(ctx, bson.M{"walletAddress": wallet}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) FindByWallets(ctx context.Context, wallets []string) ([]*model.UserIdentity, error) {
	if len(wallets) == 0 {
		return nil, nil
	}

	cursor, err := r.Users.Find(ctx, bson.M{"walletAddress": bson.M{"$in": wallets}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.UserIdentity
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
