package postgres

import (
	"context"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/conn/db/postgres/scanner"
	"github.com/modeldb/modeldb/pkg/domain"
	internal "github.com/modeldb/modeldb/pkg/domain/internal/db/postgres"
	kproj "github.com/modeldb/modeldb/pkg/domain/project/db"
)

type pgProject struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kproj.Interface {
	return &pgProject{pool: pool}
}

func (p *pgProject) List(ctx context.Context) ([]domain.Project, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanner.New[domain.Project]().QueryAll(
		ctx, conn,
		`
		select
			"project_id", "project_name", "description", "created_at"
		from "projects"
		order by "created_at", "project_id"
		`,
	)
}

func (p *pgProject) Get(ctx context.Context, projectId string) (*domain.Project, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	projects, err := internal.GetProjects(ctx, conn, []string{projectId})
	if err != nil {
		return nil, err
	}
	if found, ok := projects[projectId]; ok {
		return &found, nil
	}
	return nil, nil
}

func (p *pgProject) GetByName(ctx context.Context, projectName string) (*domain.Project, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return getProjectByName(ctx, conn, projectName)
}

func getProjectByName(ctx context.Context, conn kpool.Queryer, projectName string) (*domain.Project, error) {
	projects, err := internal.GetProjectsByName(ctx, conn, []string{projectName})
	if err != nil {
		return nil, err
	}
	if found, ok := projects[projectName]; ok {
		return &found, nil
	}
	return nil, nil
}

func (p *pgProject) Create(
	ctx context.Context, projectName string, options ...kproj.CreateOption,
) (domain.Project, error) {
	opts := &kproj.CreateOptions{}
	for _, o := range options {
		opts = o(opts)
	}

	if opts.Tx != nil {
		return createProject(ctx, opts.Tx, projectName, opts.Description)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	defer tx.Rollback(ctx)

	created, err := createProject(ctx, tx, projectName, opts.Description)
	if err != nil {
		return domain.Project{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, err
	}
	return created, nil
}

func createProject(
	ctx context.Context, tx kpool.Tx, projectName string, description *string,
) (domain.Project, error) {
	if found, err := getProjectByName(ctx, tx, projectName); err != nil {
		return domain.Project{}, err
	} else if found != nil {
		return *found, nil
	}

	created := domain.Project{}
	if err := tx.QueryRow(
		ctx,
		`
		insert into "projects" ("project_id", "project_name", "description")
		values ($1, $2, $3)
		returning "project_id", "project_name", "description", "created_at"
		`,
		domain.NewShortId(), projectName, description,
	).Scan(
		&created.ProjectId, &created.ProjectName,
		&created.Description, &created.CreatedAt,
	); err != nil {
		return domain.Project{}, err
	}
	return created, nil
}
