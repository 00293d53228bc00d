package db

import (
	kexp "github.com/modeldb/modeldb/pkg/domain/experiment/db"
	kmodel "github.com/modeldb/modeldb/pkg/domain/model/db"
	kproj "github.com/modeldb/modeldb/pkg/domain/project/db"
	kschema "github.com/modeldb/modeldb/pkg/domain/schema/db"
)

type RegistryDatabase interface {
	Project() kproj.Interface
	Model() kmodel.Interface
	Experiment() kexp.Interface
	Schema() kschema.SchemaInterface
	Close() error
}
