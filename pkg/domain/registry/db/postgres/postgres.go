package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	kexp "github.com/modeldb/modeldb/pkg/domain/experiment/db"
	kpgexp "github.com/modeldb/modeldb/pkg/domain/experiment/db/postgres"
	kmodel "github.com/modeldb/modeldb/pkg/domain/model/db"
	kpgmodel "github.com/modeldb/modeldb/pkg/domain/model/db/postgres"
	kproj "github.com/modeldb/modeldb/pkg/domain/project/db"
	kpgproj "github.com/modeldb/modeldb/pkg/domain/project/db/postgres"
	dbInterface "github.com/modeldb/modeldb/pkg/domain/registry/db"
	kschema "github.com/modeldb/modeldb/pkg/domain/schema/db"
	kpgschema "github.com/modeldb/modeldb/pkg/domain/schema/db/postgres"
	xe "github.com/modeldb/modeldb/pkg/errors"
)

type registryDBPostgres struct {
	pool       *pgxpool.Pool
	project    kproj.Interface
	model      kmodel.Interface
	experiment kexp.Interface
	schema     kschema.SchemaInterface
}

type Config struct {
	// PoolRecycle is the lifetime of pooled connections.
	//
	// Connections older than this are closed and replaced,
	// so the registry does not keep stale connections around.
	PoolRecycle time.Duration
}

func DefaultConfig() Config {
	return Config{
		PoolRecycle: 3600 * time.Second,
	}
}

type Option func(*Config) *Config

func WithPoolRecycle(recycle time.Duration) Option {
	return func(c *Config) *Config {
		c.PoolRecycle = recycle
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.RegistryDatabase, error) {
	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	conf, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	conf.MaxConnLifetime = c.PoolRecycle

	pool, err := pgxpool.ConnectConfig(ctx, conf)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	p := kpool.Wrap(pool)

	return &registryDBPostgres{
		pool:       pool,
		project:    kpgproj.New(p),
		model:      kpgmodel.New(p),
		experiment: kpgexp.New(p),
		schema:     kpgschema.New(p),
	}, nil
}

func (r *registryDBPostgres) Project() kproj.Interface {
	return r.project
}

func (r *registryDBPostgres) Model() kmodel.Interface {
	return r.model
}

func (r *registryDBPostgres) Experiment() kexp.Interface {
	return r.experiment
}

func (r *registryDBPostgres) Schema() kschema.SchemaInterface {
	return r.schema
}

func (r *registryDBPostgres) Close() error {
	r.pool.Close()
	return nil
}
