package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/modeldb/modeldb/pkg/conn/db/postgres/pool/proxy"
	"github.com/modeldb/modeldb/pkg/conn/db/postgres/pool/testenv"
	"github.com/modeldb/modeldb/pkg/domain"
	kerr "github.com/modeldb/modeldb/pkg/domain/errors"
	kexp "github.com/modeldb/modeldb/pkg/domain/experiment/db"
	kpgexp "github.com/modeldb/modeldb/pkg/domain/experiment/db/postgres"
	kpgmodel "github.com/modeldb/modeldb/pkg/domain/model/db/postgres"
	kpgproj "github.com/modeldb/modeldb/pkg/domain/project/db/postgres"
	"github.com/modeldb/modeldb/pkg/utils/pointer"
	"github.com/modeldb/modeldb/pkg/utils/try"
)

func TestExperiment_Create(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("it registers an experiment with all fields", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		created := try.To(testee.Create(
			ctx, model.ModelId, "v1",
			kexp.WithParameters(domain.JsonMap{"epochs": 10.0, "lr": 0.001}),
			kexp.WithTrainingDataset("cifar10/train"),
			kexp.WithValidationDataset("cifar10/val"),
			kexp.WithTestDataset("cifar10/test"),
			kexp.WithEvaluations(domain.JsonMap{"accuracy": 0.9}),
			kexp.WithArtifactFilePaths(domain.JsonMap{"model": "/models/resnet18.onnx"}),
		)).OrFatal(t)

		if len(created.ExperimentId) != 6 {
			t.Errorf("unexpected id: %s", created.ExperimentId)
		}
		if created.ModelId != model.ModelId || created.ModelVersionId != "v1" {
			t.Errorf("unexpected record: %+v", created)
		}
		if !created.Parameters.Equal(domain.JsonMap{"epochs": 10.0, "lr": 0.001}) {
			t.Errorf("unexpected parameters: %+v", created.Parameters)
		}
		if pointer.SafeDeref(created.TrainingDataset) != "cifar10/train" {
			t.Errorf("unexpected training dataset: %v", created.TrainingDataset)
		}

		found := try.To(testee.Get(ctx, created.ExperimentId)).OrFatal(t)
		if !created.Equal(found) {
			t.Errorf("record mismatch: (created, found) = (%+v, %+v)", created, found)
		}
	})

	t.Run("it is not idempotent: each call registers a new record", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		first := try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)
		second := try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)

		if first.ExperimentId == second.ExperimentId {
			t.Errorf("experiments are not distinct: %+v, %+v", first, second)
		}

		all := try.To(testee.GetByModelId(ctx, model.ModelId)).OrFatal(t)
		if len(all) != 2 {
			t.Errorf("unexpected experiments: %+v", all)
		}
	})

	t.Run("optional fields stay null when not passed", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		created := try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)

		if created.Parameters != nil || created.Evaluations != nil || created.ArtifactFilePaths != nil {
			t.Errorf("unexpected json fields: %+v", created)
		}
		if created.TrainingDataset != nil || created.ValidationDataset != nil || created.TestDataset != nil {
			t.Errorf("unexpected dataset fields: %+v", created)
		}
	})
}

func TestExperiment_Get(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("Get and GetByModelVersionId return nil for absent experiments", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)
		testee := kpgexp.New(pgpool)

		if found := try.To(testee.Get(ctx, "no-such")).OrFatal(t); found != nil {
			t.Errorf("unexpected experiment: %+v", found)
		}
		if found := try.To(testee.GetByModelVersionId(ctx, "no-such")).OrFatal(t); found != nil {
			t.Errorf("unexpected experiment: %+v", found)
		}
	})

	t.Run("GetByModelVersionId returns the first registered match", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		first := try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)
		try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)

		found := try.To(testee.GetByModelVersionId(ctx, "v1")).OrFatal(t)
		if !first.Equal(found) {
			t.Errorf("record mismatch: (first, found) = (%+v, %+v)", first, found)
		}
	})

	t.Run("GetByProjectId pairs each experiment with its model", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		projects := kpgproj.New(pgpool)
		models := kpgmodel.New(pgpool)
		testee := kpgexp.New(pgpool)

		wanted := try.To(projects.Create(ctx, "cifar10")).OrFatal(t)
		other := try.To(projects.Create(ctx, "mnist")).OrFatal(t)

		expected := map[string]string{} // experiment id -> model id
		for _, modelName := range []string{"resnet18", "vgg16"} {
			model := try.To(models.Create(ctx, wanted.ProjectId, modelName)).OrFatal(t)
			for _, version := range []string{"v1", "v2"} {
				exp := try.To(testee.Create(ctx, model.ModelId, version)).OrFatal(t)
				expected[exp.ExperimentId] = model.ModelId
			}
		}
		{
			// out-of-project records should not appear
			model := try.To(models.Create(ctx, other.ProjectId, "lenet")).OrFatal(t)
			try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)
		}

		pairs := try.To(testee.GetByProjectId(ctx, wanted.ProjectId)).OrFatal(t)
		if len(pairs) != len(expected) {
			t.Fatalf("unexpected pairs: %+v", pairs)
		}
		for _, pair := range pairs {
			exp, model := pair.Decompose()
			if expected[exp.ExperimentId] != model.ModelId {
				t.Errorf("experiment %s is paired with wrong model: %+v", exp.ExperimentId, model)
			}
			if model.ProjectId != wanted.ProjectId {
				t.Errorf("unexpected model in pairs: %+v", model)
			}
		}
	})

	t.Run("GetByProjectId returns empty for projects without models", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "empty")).OrFatal(t)

		pairs := try.To(kpgexp.New(pgpool).GetByProjectId(ctx, project.ProjectId)).OrFatal(t)
		if len(pairs) != 0 {
			t.Errorf("unexpected pairs: %+v", pairs)
		}
	})
}

func TestExperiment_Update(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("UpdateEvaluations replaces null wholesale, then merges key by key", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		created := try.To(testee.Create(ctx, model.ModelId, "v1")).OrFatal(t)

		replaced := try.To(testee.UpdateEvaluations(
			ctx, created.ExperimentId, domain.JsonMap{"accuracy": 0.9},
		)).OrFatal(t)
		if !replaced.Evaluations.Equal(domain.JsonMap{"accuracy": 0.9}) {
			t.Errorf("unexpected evaluations: %+v", replaced.Evaluations)
		}

		extended := try.To(testee.UpdateEvaluations(
			ctx, created.ExperimentId, domain.JsonMap{"f1": 0.8},
		)).OrFatal(t)
		if !extended.Evaluations.Equal(domain.JsonMap{"accuracy": 0.9, "f1": 0.8}) {
			t.Errorf("unexpected evaluations: %+v", extended.Evaluations)
		}

		overwritten := try.To(testee.UpdateEvaluations(
			ctx, created.ExperimentId, domain.JsonMap{"accuracy": 0.95},
		)).OrFatal(t)
		if !overwritten.Evaluations.Equal(domain.JsonMap{"accuracy": 0.95, "f1": 0.8}) {
			t.Errorf("unexpected evaluations: %+v", overwritten.Evaluations)
		}

		found := try.To(testee.Get(ctx, created.ExperimentId)).OrFatal(t)
		if !overwritten.Equal(found) {
			t.Errorf("record mismatch: (updated, found) = (%+v, %+v)", overwritten, found)
		}
	})

	t.Run("UpdateArtifactFilePaths merges as UpdateEvaluations does", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)

		testee := kpgexp.New(pgpool)
		created := try.To(testee.Create(
			ctx, model.ModelId, "v1",
			kexp.WithArtifactFilePaths(domain.JsonMap{"model": "/models/v1.onnx"}),
		)).OrFatal(t)

		updated := try.To(testee.UpdateArtifactFilePaths(
			ctx, created.ExperimentId,
			domain.JsonMap{"report": "/reports/v1.html"},
		)).OrFatal(t)

		if !updated.ArtifactFilePaths.Equal(domain.JsonMap{
			"model":  "/models/v1.onnx",
			"report": "/reports/v1.html",
		}) {
			t.Errorf("unexpected artifact file paths: %+v", updated.ArtifactFilePaths)
		}

		// other json fields are untouched
		if !updated.Evaluations.Equal(created.Evaluations) {
			t.Errorf("evaluations changed: %+v", updated.Evaluations)
		}
	})

	t.Run("updates commit their transaction exactly once", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		project := try.To(kpgproj.New(pgpool).Create(ctx, "cifar10")).OrFatal(t)
		model := try.To(
			kpgmodel.New(pgpool).Create(ctx, project.ProjectId, "resnet18"),
		).OrFatal(t)
		created := try.To(
			kpgexp.New(pgpool).Create(ctx, model.ModelId, "v1"),
		).OrFatal(t)

		wrapped := proxy.Wrap(pgpool)
		commits := 0
		wrapped.Events().Commit.After(func() { commits += 1 })

		testee := kpgexp.New(wrapped)
		try.To(testee.UpdateEvaluations(
			ctx, created.ExperimentId, domain.JsonMap{"accuracy": 0.9},
		)).OrFatal(t)

		if commits != 1 {
			t.Errorf("unexpected commit count: %d", commits)
		}
	})

	t.Run("updating an absent experiment causes a not-found error", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		wrapped := proxy.Wrap(pgpool)
		commits := 0
		wrapped.Events().Commit.After(func() { commits += 1 })

		testee := kpgexp.New(wrapped)
		if _, err := testee.UpdateEvaluations(
			ctx, "no-such", domain.JsonMap{"accuracy": 0.9},
		); !errors.Is(err, kerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := testee.UpdateArtifactFilePaths(
			ctx, "no-such", domain.JsonMap{"model": "/models/v1.onnx"},
		); !errors.Is(err, kerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}

		if commits != 0 {
			t.Errorf("unexpected commit count: %d", commits)
		}
	})
}
