package strips

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Strips []Strip `yaml:"strips"`
}

// LoadSeed reads the startup strip population from a YAML file. The file
// holds fully-specified strip records; ids present in the file are kept.
func LoadSeed(path string) ([]Strip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return f.Strips, nil
}
