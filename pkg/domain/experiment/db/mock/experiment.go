// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/modeldb/modeldb/pkg/domain"
	kexp "github.com/modeldb/modeldb/pkg/domain/experiment/db"
	mocks "github.com/modeldb/modeldb/pkg/domain/internal/db/mock"
	"github.com/modeldb/modeldb/pkg/utils/tuple"
)

type ExperimentInterface struct {
	Impl struct {
		List                    func(context.Context) ([]domain.Experiment, error)
		Get                     func(context.Context, string) (*domain.Experiment, error)
		GetByModelVersionId     func(context.Context, string) (*domain.Experiment, error)
		GetByModelId            func(context.Context, string) ([]domain.Experiment, error)
		GetByProjectId          func(context.Context, string) ([]tuple.Pair[domain.Experiment, domain.Model], error)
		Create                  func(context.Context, string, string, ...kexp.CreateOption) (domain.Experiment, error)
		UpdateEvaluations       func(context.Context, string, domain.JsonMap) (domain.Experiment, error)
		UpdateArtifactFilePaths func(context.Context, string, domain.JsonMap) (domain.Experiment, error)
	}
	Calls struct {
		List                mocks.CallLog[struct{}]
		Get                 mocks.CallLog[struct{ ExperimentId string }]
		GetByModelVersionId mocks.CallLog[struct{ ModelVersionId string }]
		GetByModelId        mocks.CallLog[struct{ ModelId string }]
		GetByProjectId      mocks.CallLog[struct{ ProjectId string }]
		Create              mocks.CallLog[struct {
			ModelId        string
			ModelVersionId string
		}]
		UpdateEvaluations mocks.CallLog[struct {
			ExperimentId string
			Evaluations  domain.JsonMap
		}]
		UpdateArtifactFilePaths mocks.CallLog[struct {
			ExperimentId string
			Paths        domain.JsonMap
		}]
	}
}

func NewExperimentInterface() *ExperimentInterface {
	return &ExperimentInterface{}
}

var _ kexp.Interface = &ExperimentInterface{}

func (m *ExperimentInterface) List(ctx context.Context) ([]domain.Experiment, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) Get(ctx context.Context, experimentId string) (*domain.Experiment, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ ExperimentId string }{ExperimentId: experimentId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, experimentId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) GetByModelVersionId(ctx context.Context, modelVersionId string) (*domain.Experiment, error) {
	m.Calls.GetByModelVersionId = append(m.Calls.GetByModelVersionId, struct{ ModelVersionId string }{ModelVersionId: modelVersionId})
	if m.Impl.GetByModelVersionId != nil {
		return m.Impl.GetByModelVersionId(ctx, modelVersionId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) GetByModelId(ctx context.Context, modelId string) ([]domain.Experiment, error) {
	m.Calls.GetByModelId = append(m.Calls.GetByModelId, struct{ ModelId string }{ModelId: modelId})
	if m.Impl.GetByModelId != nil {
		return m.Impl.GetByModelId(ctx, modelId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) GetByProjectId(
	ctx context.Context, projectId string,
) ([]tuple.Pair[domain.Experiment, domain.Model], error) {
	m.Calls.GetByProjectId = append(m.Calls.GetByProjectId, struct{ ProjectId string }{ProjectId: projectId})
	if m.Impl.GetByProjectId != nil {
		return m.Impl.GetByProjectId(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) Create(
	ctx context.Context, modelId string, modelVersionId string, options ...kexp.CreateOption,
) (domain.Experiment, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		ModelId        string
		ModelVersionId string
	}{ModelId: modelId, ModelVersionId: modelVersionId})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, modelId, modelVersionId, options...)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) UpdateEvaluations(
	ctx context.Context, experimentId string, evaluations domain.JsonMap,
) (domain.Experiment, error) {
	m.Calls.UpdateEvaluations = append(m.Calls.UpdateEvaluations, struct {
		ExperimentId string
		Evaluations  domain.JsonMap
	}{ExperimentId: experimentId, Evaluations: evaluations})
	if m.Impl.UpdateEvaluations != nil {
		return m.Impl.UpdateEvaluations(ctx, experimentId, evaluations)
	}
	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) UpdateArtifactFilePaths(
	ctx context.Context, experimentId string, paths domain.JsonMap,
) (domain.Experiment, error) {
	m.Calls.UpdateArtifactFilePaths = append(m.Calls.UpdateArtifactFilePaths, struct {
		ExperimentId string
		Paths        domain.JsonMap
	}{ExperimentId: experimentId, Paths: paths})
	if m.Impl.UpdateArtifactFilePaths != nil {
		return m.Impl.UpdateArtifactFilePaths(ctx, experimentId, paths)
	}
	panic(errors.New("it should not be called"))
}
