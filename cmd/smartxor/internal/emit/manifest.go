package emit

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest records how an output file was produced.
type Manifest struct {
	Input          string  `yaml:"input"`
	Output         string  `yaml:"output"`
	Format         Format  `yaml:"format"`
	Key            int     `yaml:"key"`
	Size           int     `yaml:"size"`
	Trials         int     `yaml:"trials"`
	Exhaustive     bool    `yaml:"exhaustive"`
	Seed           *uint64 `yaml:"seed,omitempty"`
	InputEntropy   float64 `yaml:"input_entropy"`
	EncodedEntropy float64 `yaml:"encoded_entropy"`
}

// WriteManifest writes m as YAML to path, with the same guarantees as WriteFile.
func WriteManifest(path string, m Manifest) error {
	return writeAtomic(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	})
}

// ReadManifest parses a Manifest written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
