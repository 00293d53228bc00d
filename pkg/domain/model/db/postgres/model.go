package postgres

import (
	"context"
	"fmt"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/conn/db/postgres/scanner"
	"github.com/modeldb/modeldb/pkg/domain"
	kpgerr "github.com/modeldb/modeldb/pkg/domain/errors/dberrors/postgres"
	internal "github.com/modeldb/modeldb/pkg/domain/internal/db/postgres"
	kmodel "github.com/modeldb/modeldb/pkg/domain/model/db"
)

type pgModel struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kmodel.Interface {
	return &pgModel{pool: pool}
}

func (m *pgModel) List(ctx context.Context) ([]domain.Model, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanner.New[domain.Model]().QueryAll(
		ctx, conn,
		`
		select
			"model_id", "project_id", "model_name", "description", "created_at"
		from "models"
		order by "created_at", "model_id"
		`,
	)
}

func (m *pgModel) Get(ctx context.Context, modelId string) (*domain.Model, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	models, err := internal.GetModels(ctx, conn, []string{modelId})
	if err != nil {
		return nil, err
	}
	if found, ok := models[modelId]; ok {
		return &found, nil
	}
	return nil, nil
}

func (m *pgModel) GetByProjectId(ctx context.Context, projectId string) ([]domain.Model, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return getModelsInProject(ctx, conn, projectId)
}

func getModelsInProject(ctx context.Context, conn kpool.Queryer, projectId string) ([]domain.Model, error) {
	return scanner.New[domain.Model]().QueryAll(
		ctx, conn,
		`
		select
			"model_id", "project_id", "model_name", "description", "created_at"
		from "models"
		where "project_id" = $1
		order by "created_at", "model_id"
		`,
		projectId,
	)
}

func (m *pgModel) GetByProjectName(ctx context.Context, projectName string) ([]domain.Model, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	projects, err := internal.GetProjectsByName(ctx, conn, []string{projectName})
	if err != nil {
		return nil, err
	}
	project, ok := projects[projectName]
	if !ok {
		return nil, kpgerr.Missing{
			Table:    "projects",
			Identity: fmt.Sprintf("project_name='%s'", projectName),
		}
	}

	return getModelsInProject(ctx, conn, project.ProjectId)
}

func (m *pgModel) GetByName(ctx context.Context, modelName string) ([]domain.Model, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanner.New[domain.Model]().QueryAll(
		ctx, conn,
		`
		select
			"model_id", "project_id", "model_name", "description", "created_at"
		from "models"
		where "model_name" = $1
		order by "created_at", "model_id"
		`,
		modelName,
	)
}

func (m *pgModel) Create(
	ctx context.Context, projectId string, modelName string, options ...kmodel.CreateOption,
) (domain.Model, error) {
	opts := &kmodel.CreateOptions{}
	for _, o := range options {
		opts = o(opts)
	}

	if opts.Tx != nil {
		return createModel(ctx, opts.Tx, projectId, modelName, opts.Description)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Model{}, err
	}
	defer tx.Rollback(ctx)

	created, err := createModel(ctx, tx, projectId, modelName, opts.Description)
	if err != nil {
		return domain.Model{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Model{}, err
	}
	return created, nil
}

func createModel(
	ctx context.Context, tx kpool.Tx, projectId string, modelName string, description *string,
) (domain.Model, error) {
	inProject, err := getModelsInProject(ctx, tx, projectId)
	if err != nil {
		return domain.Model{}, err
	}
	for _, found := range inProject {
		if found.ModelName == modelName {
			return found, nil
		}
	}

	created := domain.Model{}
	if err := tx.QueryRow(
		ctx,
		`
		insert into "models" ("model_id", "project_id", "model_name", "description")
		values ($1, $2, $3, $4)
		returning "model_id", "project_id", "model_name", "description", "created_at"
		`,
		domain.NewShortId(), projectId, modelName, description,
	).Scan(
		&created.ModelId, &created.ProjectId, &created.ModelName,
		&created.Description, &created.CreatedAt,
	); err != nil {
		return domain.Model{}, err
	}
	return created, nil
}
