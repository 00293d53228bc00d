package db

import (
	"context"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/domain"
	"github.com/modeldb/modeldb/pkg/utils/tuple"
)

type CreateOptions struct {
	Parameters        domain.JsonMap
	TrainingDataset   *string
	ValidationDataset *string
	TestDataset       *string
	Evaluations       domain.JsonMap
	ArtifactFilePaths domain.JsonMap
	Tx                kpool.Tx
}

type CreateOption func(*CreateOptions) *CreateOptions

func WithParameters(parameters domain.JsonMap) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.Parameters = parameters
		return o
	}
}

func WithTrainingDataset(dataset string) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.TrainingDataset = &dataset
		return o
	}
}

func WithValidationDataset(dataset string) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.ValidationDataset = &dataset
		return o
	}
}

func WithTestDataset(dataset string) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.TestDataset = &dataset
		return o
	}
}

func WithEvaluations(evaluations domain.JsonMap) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.Evaluations = evaluations
		return o
	}
}

func WithArtifactFilePaths(paths domain.JsonMap) CreateOption {
	return func(o *CreateOptions) *CreateOptions {
		o.ArtifactFilePaths = paths
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
	// List returns all experiments.
	List(ctx context.Context) ([]domain.Experiment, error)

	// Get returns the experiment with the id.
	//
	// When no such experiment exists, it returns (nil, nil).
	Get(ctx context.Context, experimentId string) (*domain.Experiment, error)

	// GetByModelVersionId returns the oldest experiment having the model
	// version id.
	//
	// Model version ids are not constrained unique. When several experiments
	// share one, only the first registered is returned.
	//
	// When no such experiment exists, it returns (nil, nil).
	GetByModelVersionId(ctx context.Context, modelVersionId string) (*domain.Experiment, error)

	// GetByModelId returns experiments of the model.
	GetByModelId(ctx context.Context, modelId string) ([]domain.Experiment, error)

	// GetByProjectId returns experiments in the project,
	// each paired with its owning model.
	GetByProjectId(ctx context.Context, projectId string) ([]tuple.Pair[domain.Experiment, domain.Model], error)

	// Create registers an experiment and returns it.
	//
	// Unlike Project and Model, this is not idempotent.
	// Every call inserts a new record with a fresh id.
	Create(ctx context.Context, modelId string, modelVersionId string, options ...CreateOption) (domain.Experiment, error)

	// UpdateEvaluations merges evaluations into the experiment's stored ones
	// and returns the refreshed record.
	//
	// When the stored value is null it is replaced wholesale. Otherwise keys
	// of the passed map overwrite same-named stored keys and other stored
	// keys are retained.
	//
	// When no such experiment exists, it returns an error unwrapping to
	// kerr.ErrMissing.
	UpdateEvaluations(ctx context.Context, experimentId string, evaluations domain.JsonMap) (domain.Experiment, error)

	// UpdateArtifactFilePaths merges paths into the experiment's stored
	// artifact file paths. Semantics as UpdateEvaluations.
	UpdateArtifactFilePaths(ctx context.Context, experimentId string, paths domain.JsonMap) (domain.Experiment, error)
}
