package registry

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration of the metadata registry.
//
// This type is marshalling value and mutable.
// Consider to use immutable version, `RegistryConfig`.
// You can get `RegistryConfig` instance with `RegistryConfigMarshall.TrySeal()`
type RegistryConfigMarshall struct {
	Database    string `yaml:"database"`
	PoolRecycle int32  `yaml:"pool_recycle,omitempty"`
}

// verify configuration value and create "readonly" version of this.
//
// IT WILL PANIC if any misconfiguration is found.
func (rm *RegistryConfigMarshall) TrySeal() *RegistryConfig {
	return rm.trySeal("(root)")
}

func (rm *RegistryConfigMarshall) trySeal(path string) *RegistryConfig {
	poolRecycle := rm.PoolRecycle
	if poolRecycle == 0 {
		poolRecycle = 3600
	}
	return &RegistryConfig{
		database:    required(rm.Database, path+".database"),
		poolRecycle: time.Duration(poolRecycle) * time.Second,
	}
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}

// load registry config from a file.
//
// args:
//   - filepath: filepath refers a config file.
//
// returns *RegistryConfig, error:
//
//	When loading success, returns `(*RegistryConfig, nil)`.
//	Otherwise, returns `(nil, error)`.
func LoadRegistryConfig(filepath string) (*RegistryConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (out *RegistryConfig, err error) {
	var _out *RegistryConfigMarshall
	err = yaml.Unmarshal(conf, &_out)
	if err != nil {
		return nil, err
	}
	out = _out.TrySeal()
	return out, nil
}
