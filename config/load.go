package engineconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a Config from path. If path does not exist, Load returns
// Default() rather than an error, so a missing config file is never
// fatal to engine startup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("engineconfig: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("engineconfig: parse %q: %w", path, err)
	}
	return cfg, nil
}
