package dataset

import (
	"fmt"
	"io"
	"path/filepath"

	"gwas/api/models/constants"
	"gwas/api/models/constants/resolution"

	yaml "gopkg.in/yaml.v2"
)

/*
Manifest describes a dataset on disk:

	phenotypes:
	  path: phenotypes.csv
	  sample_column: sample
	genotypes:
	  path: genotypes.csv
	resolutions:
	  fine: 10000
	  medium: 100000
	  coarse: 1000000

Relative paths are resolved against the manifest's directory.
*/
type Manifest struct {
	Phenotypes struct {
		Path         string `yaml:"path"`
		SampleColumn string `yaml:"sample_column"`
	} `yaml:"phenotypes"`
	Genotypes struct {
		Path string `yaml:"path"`
	} `yaml:"genotypes"`
	Resolutions map[string]int `yaml:"resolutions"`
}

func DecodeManifest(r io.Reader, baseDir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	if m.Phenotypes.Path == "" || m.Genotypes.Path == "" {
		return nil, fmt.Errorf("manifest must name both a phenotypes and a genotypes path")
	}
	if m.Phenotypes.SampleColumn == "" {
		m.Phenotypes.SampleColumn = "sample"
	}
	if !filepath.IsAbs(m.Phenotypes.Path) {
		m.Phenotypes.Path = filepath.Join(baseDir, m.Phenotypes.Path)
	}
	if !filepath.IsAbs(m.Genotypes.Path) {
		m.Genotypes.Path = filepath.Join(baseDir, m.Genotypes.Path)
	}

	for name := range m.Resolutions {
		if !resolution.IsKnownResolution(name) {
			return nil, fmt.Errorf("unknown resolution %q in manifest", name)
		}
	}
	return &m, nil
}

func (m *Manifest) BlockWidths() map[constants.Resolution]int {
	widths := map[constants.Resolution]int{}
	for name, width := range m.Resolutions {
		widths[resolution.CastToResolution(name)] = width
	}
	return widths
}
