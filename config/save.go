package engineconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes c to path as YAML, creating the file if it does not exist.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("engineconfig: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("engineconfig: write %q: %w", path, err)
	}
	return nil
}
