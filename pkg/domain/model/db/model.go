package db

import (
	"context"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/domain"
)

type CreateOptions struct {
	Description *string
	Tx          kpool.Tx
}

type CreateOption func(*CreateOptions) *CreateOptions

// WithDescription sets description of the record to be created.
func WithDescription(description string) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.Description = &description
		return o
	}
}

// WithTx runs the create in the passed caller-owned transaction.
//
// The record is inserted but left uncommitted.
// Committing or rolling back is up to the caller.
func WithTx(tx kpool.Tx) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.Tx = tx
		return o
	}
}

type Interface interface {
	// List returns all models.
	List(ctx context.Context) ([]domain.Model, error)

	// Get returns the model with the id.
	//
	// When no such model exists, it returns (nil, nil).
	Get(ctx context.Context, modelId string) (*domain.Model, error)

	// GetByProjectId returns models in the project.
	//
	// Unknown project ids just yield an empty list.
	GetByProjectId(ctx context.Context, projectId string) ([]domain.Model, error)

	// GetByProjectName returns models in the project named projectName.
	//
	// When no project has that name, it returns an error unwrapping to
	// kerr.ErrMissing.
	GetByProjectName(ctx context.Context, projectName string) ([]domain.Model, error)

	// GetByName returns models named modelName, across all projects.
	GetByName(ctx context.Context, modelName string) ([]domain.Model, error)

	// Create registers a model named modelName in the project and returns it.
	//
	// When the project already has a model with that name, the existing
	// record is returned and nothing is inserted.
	//
	// The existence check and the insert are not atomic. Racing callers can
	// lose with a unique violation on ("project_id", "model_name"); retrying
	// resolves it as a lookup.
	Create(ctx context.Context, projectId string, modelName string, options ...CreateOption) (domain.Model, error)
}
