package postgres

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"

	kpool "github.com/modeldb/modeldb/pkg/conn/db/postgres/pool"
	kschema "github.com/modeldb/modeldb/pkg/domain/schema/db"
)

//go:embed schema.sql
var ddl string

type pgSchema struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kschema.SchemaInterface {
	return &pgSchema{pool: pool}
}

func (s *pgSchema) Ensure(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *pgSchema) Exists(ctx context.Context) (bool, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var one int
	if err := conn.QueryRow(
		ctx, `select 1 from "experiments" limit 1`,
	).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// table is there, just empty
			return true, nil
		}
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.UndefinedTable {
				return false, nil
			}
		}
		return false, err
	}

	return true, nil
}
