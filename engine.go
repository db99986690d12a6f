package ccsubdiv

import (
	"fmt"

	engineconfig "github.com/polymesh-go/ccsubdiv/config"
)

// CreateWithConfig is Create driven by an engineconfig.Config: it sizes
// the worker pool from cfg.Workers, installs a logger built from
// cfg.Logging via SetLogger, and disables UV storage when cfg.EnableUVs
// is false even if the cage itself carries uvs. A nil cfg behaves like
// engineconfig.Default().
func CreateWithConfig(cage *Cage, maxDepth int, cfg *engineconfig.Config) (*Subd, error) {
	if cfg == nil {
		cfg = engineconfig.Default()
	}

	logger, err := engineconfig.BuildLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("ccsubdiv: build logger: %w", err)
	}
	SetLogger(logger)

	s, err := CreateWithWorkers(cage, maxDepth, cfg.Workers)
	if err != nil {
		return nil, err
	}
	if !cfg.EnableUVs {
		s.uvsEnabled = false
	}
	return s, nil
}
