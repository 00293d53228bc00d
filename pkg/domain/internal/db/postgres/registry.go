package internal

import (
	"context"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	"github.com/modeldb/modeldb/pkg/conn/db/postgres/scanner"
	"github.com/modeldb/modeldb/pkg/domain"
	"github.com/modeldb/modeldb/pkg/utils/slices"
)

// GetProjects fetches projects by id.
//
// The returned map contains an entry per found project, keyed by project id.
// Unknown ids are just not in the map.
func GetProjects(ctx context.Context, conn kpool.Queryer, projectIds []string) (map[string]domain.Project, error) {
	projects, err := scanner.New[domain.Project]().QueryAll(
		ctx, conn,
		`
		select
			"project_id", "project_name", "description", "created_at"
		from "projects"
		where "project_id" = any($1::varchar[])
		`,
		projectIds,
	)
	if err != nil {
		return nil, err
	}

	return slices.ToMap(projects, func(p domain.Project) string { return p.ProjectId }), nil
}

// GetProjectsByName fetches projects by name.
//
// Project names are unique, so each name matches at most one project.
func GetProjectsByName(ctx context.Context, conn kpool.Queryer, projectNames []string) (map[string]domain.Project, error) {
	projects, err := scanner.New[domain.Project]().QueryAll(
		ctx, conn,
		`
		select
			"project_id", "project_name", "description", "created_at"
		from "projects"
		where "project_name" = any($1::varchar[])
		`,
		projectNames,
	)
	if err != nil {
		return nil, err
	}

	return slices.ToMap(projects, func(p domain.Project) string { return p.ProjectName }), nil
}

// GetModels fetches models by id, keyed by model id.
func GetModels(ctx context.Context, conn kpool.Queryer, modelIds []string) (map[string]domain.Model, error) {
	models, err := scanner.New[domain.Model]().QueryAll(
		ctx, conn,
		`
		select
			"model_id", "project_id", "model_name", "description", "created_at"
		from "models"
		where "model_id" = any($1::varchar[])
		`,
		modelIds,
	)
	if err != nil {
		return nil, err
	}

	return slices.ToMap(models, func(m domain.Model) string { return m.ModelId }), nil
}

// GetExperiments fetches experiments by id, keyed by experiment id.
func GetExperiments(ctx context.Context, conn kpool.Queryer, experimentIds []string) (map[string]domain.Experiment, error) {
	experiments, err := scanner.New[domain.Experiment]().QueryAll(
		ctx, conn,
		`
		select
			"experiment_id", "model_id", "model_version_id",
			"parameters", "training_dataset", "validation_dataset", "test_dataset",
			"evaluations", "artifact_file_paths", "created_at"
		from "experiments"
		where "experiment_id" = any($1::varchar[])
		`,
		experimentIds,
	)
	if err != nil {
		return nil, err
	}

	return slices.ToMap(experiments, func(e domain.Experiment) string { return e.ExperimentId }), nil
}
