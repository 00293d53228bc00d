// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/modeldb/modeldb/pkg/domain"
	mocks "github.com/modeldb/modeldb/pkg/domain/internal/db/mock"
	kproj "github.com/modeldb/modeldb/pkg/domain/project/db"
)

type ProjectInterface struct {
	Impl struct {
		List      func(context.Context) ([]domain.Project, error)
		Get       func(context.Context, string) (*domain.Project, error)
		GetByName func(context.Context, string) (*domain.Project, error)
		Create    func(context.Context, string, ...kproj.CreateOption) (domain.Project, error)
	}
	Calls struct {
		List      mocks.CallLog[struct{}]
		Get       mocks.CallLog[struct{ ProjectId string }]
		GetByName mocks.CallLog[struct{ ProjectName string }]
		Create    mocks.CallLog[struct{ ProjectName string }]
	}
}

func NewProjectInterface() *ProjectInterface {
	return &ProjectInterface{}
}

var _ kproj.Interface = &ProjectInterface{}

func (m *ProjectInterface) List(ctx context.Context) ([]domain.Project, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Get(ctx context.Context, projectId string) (*domain.Project, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ ProjectId string }{ProjectId: projectId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) GetByName(ctx context.Context, projectName string) (*domain.Project, error) {
	m.Calls.GetByName = append(m.Calls.GetByName, struct{ ProjectName string }{ProjectName: projectName})
	if m.Impl.GetByName != nil {
		return m.Impl.GetByName(ctx, projectName)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Create(
	ctx context.Context, projectName string, options ...kproj.CreateOption,
) (domain.Project, error) {
	m.Calls.Create = append(m.Calls.Create, struct{ ProjectName string }{ProjectName: projectName})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, projectName, options...)
	}
	panic(errors.New("it should not be called"))
}
