package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/conn/db/postgres/scanner"
	"github.com/modeldb/modeldb/pkg/domain"
	kpgerr "github.com/modeldb/modeldb/pkg/domain/errors/dberrors/postgres"
	kexp "github.com/modeldb/modeldb/pkg/domain/experiment/db"
	internal "github.com/modeldb/modeldb/pkg/domain/internal/db/postgres"
	"github.com/modeldb/modeldb/pkg/utils/slices"
	"github.com/modeldb/modeldb/pkg/utils/tuple"
)

const experimentColumns = `
	"experiment_id", "model_id", "model_version_id",
	"parameters", "training_dataset", "validation_dataset", "test_dataset",
	"evaluations", "artifact_file_paths", "created_at"
`

type pgExperiment struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kexp.Interface {
	return &pgExperiment{pool: pool}
}

func (e *pgExperiment) List(ctx context.Context) ([]domain.Experiment, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanner.New[domain.Experiment]().QueryAll(
		ctx, conn,
		`
		select `+experimentColumns+`
		from "experiments"
		order by "created_at", "experiment_id"
		`,
	)
}

func (e *pgExperiment) Get(ctx context.Context, experimentId string) (*domain.Experiment, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	experiments, err := internal.GetExperiments(ctx, conn, []string{experimentId})
	if err != nil {
		return nil, err
	}
	if found, ok := experiments[experimentId]; ok {
		return &found, nil
	}
	return nil, nil
}

func (e *pgExperiment) GetByModelVersionId(ctx context.Context, modelVersionId string) (*domain.Experiment, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	experiments, err := scanner.New[domain.Experiment]().QueryAll(
		ctx, conn,
		`
		select `+experimentColumns+`
		from "experiments"
		where "model_version_id" = $1
		order by "created_at", "experiment_id"
		limit 1
		`,
		modelVersionId,
	)
	if err != nil {
		return nil, err
	}
	if len(experiments) == 0 {
		return nil, nil
	}
	return &experiments[0], nil
}

func (e *pgExperiment) GetByModelId(ctx context.Context, modelId string) ([]domain.Experiment, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanner.New[domain.Experiment]().QueryAll(
		ctx, conn,
		`
		select `+experimentColumns+`
		from "experiments"
		where "model_id" = $1
		order by "created_at", "experiment_id"
		`,
		modelId,
	)
}

func (e *pgExperiment) GetByProjectId(
	ctx context.Context, projectId string,
) ([]tuple.Pair[domain.Experiment, domain.Model], error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	models, err := scanner.New[domain.Model]().QueryAll(
		ctx, conn,
		`
		select
			"model_id", "project_id", "model_name", "description", "created_at"
		from "models"
		where "project_id" = $1
		`,
		projectId,
	)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return []tuple.Pair[domain.Experiment, domain.Model]{}, nil
	}
	modelsById := slices.ToMap(models, func(m domain.Model) string { return m.ModelId })

	experiments, err := scanner.New[domain.Experiment]().QueryAll(
		ctx, conn,
		`
		select `+experimentColumns+`
		from "experiments"
		where "model_id" = any($1::varchar[])
		order by "created_at", "experiment_id"
		`,
		slices.KeysOf(modelsById),
	)
	if err != nil {
		return nil, err
	}

	return slices.Map(experiments, func(exp domain.Experiment) tuple.Pair[domain.Experiment, domain.Model] {
		return tuple.PairOf(exp, modelsById[exp.ModelId])
	}), nil
}

func (e *pgExperiment) Create(
	ctx context.Context, modelId string, modelVersionId string, options ...kexp.CreateOption,
) (domain.Experiment, error) {
	opts := &kexp.CreateOptions{}
	for _, o := range options {
		opts = o(opts)
	}

	if opts.Tx != nil {
		return createExperiment(ctx, opts.Tx, modelId, modelVersionId, opts)
	}

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return domain.Experiment{}, err
	}
	defer tx.Rollback(ctx)

	created, err := createExperiment(ctx, tx, modelId, modelVersionId, opts)
	if err != nil {
		return domain.Experiment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Experiment{}, err
	}
	return created, nil
}

func createExperiment(
	ctx context.Context, tx kpool.Tx,
	modelId string, modelVersionId string, opts *kexp.CreateOptions,
) (domain.Experiment, error) {
	created := domain.Experiment{}
	if err := tx.QueryRow(
		ctx,
		`
		insert into "experiments" (
			"experiment_id", "model_id", "model_version_id",
			"parameters", "training_dataset", "validation_dataset", "test_dataset",
			"evaluations", "artifact_file_paths"
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		returning `+experimentColumns,
		domain.NewShortId(), modelId, modelVersionId,
		opts.Parameters, opts.TrainingDataset, opts.ValidationDataset, opts.TestDataset,
		opts.Evaluations, opts.ArtifactFilePaths,
	).Scan(
		&created.ExperimentId, &created.ModelId, &created.ModelVersionId,
		&created.Parameters, &created.TrainingDataset,
		&created.ValidationDataset, &created.TestDataset,
		&created.Evaluations, &created.ArtifactFilePaths, &created.CreatedAt,
	); err != nil {
		return domain.Experiment{}, err
	}
	return created, nil
}

func (e *pgExperiment) UpdateEvaluations(
	ctx context.Context, experimentId string, evaluations domain.JsonMap,
) (domain.Experiment, error) {
	return e.mergeJsonColumn(ctx, experimentId, "evaluations", evaluations)
}

func (e *pgExperiment) UpdateArtifactFilePaths(
	ctx context.Context, experimentId string, paths domain.JsonMap,
) (domain.Experiment, error) {
	return e.mergeJsonColumn(ctx, experimentId, "artifact_file_paths", paths)
}

// mergeJsonColumn locks the row, merges patch into the named jsonb column
// and stores the result.
//
// column is one of the fixed jsonb column names, never user input.
func (e *pgExperiment) mergeJsonColumn(
	ctx context.Context, experimentId string, column string, patch domain.JsonMap,
) (domain.Experiment, error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return domain.Experiment{}, err
	}
	defer tx.Rollback(ctx)

	var stored domain.JsonMap
	if err := tx.QueryRow(
		ctx,
		fmt.Sprintf(
			`select "%s" from "experiments" where "experiment_id" = $1 for update`,
			column,
		),
		experimentId,
	).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Experiment{}, kpgerr.Missing{
				Table:    "experiments",
				Identity: fmt.Sprintf("experiment_id='%s'", experimentId),
			}
		}
		return domain.Experiment{}, err
	}

	merged := stored.Merge(patch)
	if _, err := tx.Exec(
		ctx,
		fmt.Sprintf(
			`update "experiments" set "%s" = $1 where "experiment_id" = $2`,
			column,
		),
		merged, experimentId,
	); err != nil {
		return domain.Experiment{}, err
	}

	experiments, err := internal.GetExperiments(ctx, tx, []string{experimentId})
	if err != nil {
		return domain.Experiment{}, err
	}
	refreshed, ok := experiments[experimentId]
	if !ok {
		return domain.Experiment{}, kpgerr.Missing{
			Table:    "experiments",
			Identity: fmt.Sprintf("experiment_id='%s'", experimentId),
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Experiment{}, err
	}
	return refreshed, nil
}
