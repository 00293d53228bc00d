// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/modeldb/modeldb/pkg/domain"
	mocks "github.com/modeldb/modeldb/pkg/domain/internal/db/mock"
	kmodel "github.com/modeldb/modeldb/pkg/domain/model/db"
)

type ModelInterface struct {
	Impl struct {
		List             func(context.Context) ([]domain.Model, error)
		Get              func(context.Context, string) (*domain.Model, error)
		GetByProjectId   func(context.Context, string) ([]domain.Model, error)
		GetByProjectName func(context.Context, string) ([]domain.Model, error)
		GetByName        func(context.Context, string) ([]domain.Model, error)
		Create           func(context.Context, string, string, ...kmodel.CreateOption) (domain.Model, error)
	}
	Calls struct {
		List             mocks.CallLog[struct{}]
		Get              mocks.CallLog[struct{ ModelId string }]
		GetByProjectId   mocks.CallLog[struct{ ProjectId string }]
		GetByProjectName mocks.CallLog[struct{ ProjectName string }]
		GetByName        mocks.CallLog[struct{ ModelName string }]
		Create           mocks.CallLog[struct {
			ProjectId string
			ModelName string
		}]
	}
}

func NewModelInterface() *ModelInterface {
	return &ModelInterface{}
}

var _ kmodel.Interface = &ModelInterface{}

func (m *ModelInterface) List(ctx context.Context) ([]domain.Model, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ModelInterface) Get(ctx context.Context, modelId string) (*domain.Model, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ ModelId string }{ModelId: modelId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, modelId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ModelInterface) GetByProjectId(ctx context.Context, projectId string) ([]domain.Model, error) {
	m.Calls.GetByProjectId = append(m.Calls.GetByProjectId, struct{ ProjectId string }{ProjectId: projectId})
	if m.Impl.GetByProjectId != nil {
		return m.Impl.GetByProjectId(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ModelInterface) GetByProjectName(ctx context.Context, projectName string) ([]domain.Model, error) {
	m.Calls.GetByProjectName = append(m.Calls.GetByProjectName, struct{ ProjectName string }{ProjectName: projectName})
	if m.Impl.GetByProjectName != nil {
		return m.Impl.GetByProjectName(ctx, projectName)
	}
	panic(errors.New("it should not be called"))
}

func (m *ModelInterface) GetByName(ctx context.Context, modelName string) ([]domain.Model, error) {
	m.Calls.GetByName = append(m.Calls.GetByName, struct{ ModelName string }{ModelName: modelName})
	if m.Impl.GetByName != nil {
		return m.Impl.GetByName(ctx, modelName)
	}
	panic(errors.New("it should not be called"))
}

func (m *ModelInterface) Create(
	ctx context.Context, projectId string, modelName string, options ...kmodel.CreateOption,
) (domain.Model, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		ProjectId string
		ModelName string
	}{ProjectId: projectId, ModelName: modelName})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, projectId, modelName, options...)
	}
	panic(errors.New("it should not be called"))
}
