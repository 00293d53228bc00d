package db

import "context"

// SchemaInterface represents the registry's database schema.
type SchemaInterface interface {
	// Ensure creates the registry tables unless they exist.
	//
	// It is safe to call on a database which is already set up.
	Ensure(ctx context.Context) error

	// Exists reports whether the registry tables are created.
	Exists(ctx context.Context) (bool, error)
}
