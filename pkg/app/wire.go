package app

import (
	"fmt"

	"github.com/kerbaras/perusahaan/pkg/config"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/kerbaras/perusahaan/pkg/remote"
)

// OpenRepositories opens the store selected by store.driver. Callers close
// the result.
func OpenRepositories(cfg *config.Config) (data.Repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverDuckDB:
		return data.NewDuckDBRepositories(cfg.Store.Path)
	case config.DriverSQLite:
		return data.NewSQLiteRepositories(cfg.Store.Path)
	case config.DriverMemory:
		return data.NewMemoryRepositories(), nil
	case config.DriverRemote:
		return remote.NewRepositories(cfg.Remote.URL, cfg.Remote.Timeout), nil
	default:
		return data.Repositories{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
