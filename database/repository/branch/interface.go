// File: database/repository/branch/interface.go
package branchRepo

import (
	"context"

	"tutorly/database"
	"tutorly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BranchRepository is the storage collaborator for branch documents. The
// engine only ever consumes materialized snapshots; nothing here reaches
// into individual sessions.
type BranchRepository interface {
	GetByName(ctx context.Context, name string) (*models.Branch, error)
	List(ctx context.Context) ([]models.Branch, error)
	AddPeriod(ctx context.Context, branchName string, p models.Period) error
	SetSessionStatus(ctx context.Context, branchName, sessionID, status string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo constructs a new MongoDB BranchRepository.
func NewMongoBranchRepo() BranchRepository {
	db := database.MongoClient.Database("tutorly")
	return &mongoBranchRepo{
		coll: db.Collection("branches"),
	}
}
