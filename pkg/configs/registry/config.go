package registry

import "time"

// Configuration for the metadata registry.
//
// to get `RegistryConfig` instance, use `RegistryConfigMarshall.TrySeal()` .
type RegistryConfig struct {
	database    string
	poolRecycle time.Duration
}

// Connection string for database.
func (c *RegistryConfig) Database() string {
	return c.database
}

// Lifetime of pooled database connections. default = 3600 seconds.
func (c *RegistryConfig) PoolRecycle() time.Duration {
	return c.poolRecycle
}
