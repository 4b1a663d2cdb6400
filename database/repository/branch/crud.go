// File: database/repository/branch/crud.go
package branchRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorly/models"
)

func (r *mongoBranchRepo) GetByName(ctx context.Context, name string) (*models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&branch); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("branch %q not found: %w", name, err)
		}
		return nil, fmt.Errorf("failed to fetch branch %q: %w", name, err)
	}
	return &branch, nil
}

func (r *mongoBranchRepo) AddPeriod(ctx context.Context, branchName string, p models.Period) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": branchName}
	update := bson.M{"$push": bson.M{"exceptionalPeriods": p}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add period to branch %q: %w", branchName, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBranchRepo) SetSessionStatus(ctx context.Context, branchName, sessionID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": branchName, "sessions.id": sessionID}
	var update bson.M
	if status == "" {
		// Clearing the override puts the session back on normal live-status
		// derivation.
		update = bson.M{"$unset": bson.M{"sessions.$.status": ""}}
	} else {
		update = bson.M{"$set": bson.M{"sessions.$.status": status}}
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set status on session %q: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
