// File: database/repository/branch/queries.go
package branchRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorly/models"
)

// List returns every branch document in name order. The period catalog view
// depends on this ordering being stable: the global catalog keeps the first
// occurrence of a period id across branches.
func (r *mongoBranchRepo) List(ctx context.Context) ([]models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []models.Branch
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, fmt.Errorf("error decoding branches: %w", err)
	}
	return branches, nil
}
