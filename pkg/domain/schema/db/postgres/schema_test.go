package postgres_test

import (
	"context"
	"testing"

	"github.com/modeldb/modeldb/pkg/conn/db/postgres/pool/testenv"
	kpgschema "github.com/modeldb/modeldb/pkg/domain/schema/db/postgres"
	"github.com/modeldb/modeldb/pkg/utils/try"
)

func TestSchema(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("Ensure is safe on a database which is already set up", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		testee := kpgschema.New(pgpool)

		// testenv has applied the schema once already
		if err := testee.Ensure(ctx); err != nil {
			t.Fatal(err)
		}
		if err := testee.Ensure(ctx); err != nil {
			t.Fatal(err)
		}

		if exists := try.To(testee.Exists(ctx)).OrFatal(t); !exists {
			t.Error("tables should exist")
		}
	})

	t.Run("tables accept records after Ensure", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		if err := kpgschema.New(pgpool).Ensure(ctx); err != nil {
			t.Fatal(err)
		}

		conn := try.To(pgpool.Acquire(ctx)).OrFatal(t)
		defer conn.Release()

		if _, err := conn.Exec(
			ctx,
			`insert into "projects" ("project_id", "project_name") values ('aaaaaa', 'p1')`,
		); err != nil {
			t.Fatal(err)
		}
		if _, err := conn.Exec(
			ctx,
			`insert into "models" ("model_id", "project_id", "model_name") values ('bbbbbb', 'aaaaaa', 'm1')`,
		); err != nil {
			t.Fatal(err)
		}
		if _, err := conn.Exec(
			ctx,
			`
			insert into "experiments" ("experiment_id", "model_id", "model_version_id")
			values ('cccccc', 'bbbbbb', 'v1')
			`,
		); err != nil {
			t.Fatal(err)
		}
	})
}
