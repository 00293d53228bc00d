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
	// List returns all projects.
	List(ctx context.Context) ([]domain.Project, error)

	// Get returns the project with the id.
	//
	// When no such project exists, it returns (nil, nil).
	Get(ctx context.Context, projectId string) (*domain.Project, error)

	// GetByName returns the project named projectName.
	//
	// When no such project exists, it returns (nil, nil).
	GetByName(ctx context.Context, projectName string) (*domain.Project, error)

	// Create registers a project named projectName and returns it.
	//
	// When a project with that name already exists, the existing record is
	// returned and nothing is inserted.
	//
	// The existence check and the insert are not atomic. Racing callers can
	// lose with a unique violation on "project_name"; retrying resolves it
	// as a lookup.
	Create(ctx context.Context, projectName string, options ...CreateOption) (domain.Project, error)
}
