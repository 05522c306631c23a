// Package reference loads the static content of the site: the penalty
// scale used by the calculator and the display-only tables around it.
// The catalog is read once and never mutated afterwards.
package reference

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"penal-engine/internal/model"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

var defaultCatalog = mustLoadEmbedded()

// Offense maps a common offense to the base penalty category it carries.
type Offense struct {
	Name       string `json:"name" yaml:"name"`
	CategoryID string `json:"category_id" yaml:"category_id"`
}

// Benefit is a prison benefit and the share of the sentence it requires.
type Benefit struct {
	Name        string `json:"name" yaml:"name"`
	Requirement string `json:"requirement" yaml:"requirement"`
	Description string `json:"description" yaml:"description"`
}

// Stage is one step of the criminal procedure.
type Stage struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
}

type Resource struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

type EmergencyPhone struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// Catalog is the full set of reference content.
type Catalog struct {
	Penalties           model.Scale      `yaml:"penalties"`
	Offenses            []Offense        `yaml:"offenses"`
	MitigatingExamples  []string         `yaml:"mitigating_examples"`
	Benefits            []Benefit        `yaml:"benefits"`
	GeneralRequirements []string         `yaml:"general_requirements"`
	Stages              []Stage          `yaml:"stages"`
	AlternativeOutcomes []string         `yaml:"alternative_outcomes"`
	RightsOfAccused     []string         `yaml:"rights_of_accused"`
	Resources           []Resource       `yaml:"resources"`
	EmergencyPhones     []EmergencyPhone `yaml:"emergency_phones"`
	Legislation         []string         `yaml:"legislation"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoadEmbedded() *Catalog {
	sub, err := fs.Sub(embeddedFS, "data")
	if err != nil {
		panic(fmt.Sprintf("reference: embedded data: %v", err))
	}
	c, err := Load(sub)
	if err != nil {
		panic(fmt.Sprintf("reference: embedded data: %v", err))
	}
	return c
}

// LoadDir loads a catalog from the YAML files in dir.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reference.LoadDir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("reference.LoadDir: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every *.yaml file at the root of fsys, merges them in name
// order and validates the result.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("reference.Load: glob: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("reference.Load: no yaml files found")
	}
	sort.Strings(paths)

	c := &Catalog{}
	for _, p := range paths {
		part, err := decodeFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reference.Load: %s: %w", path.Base(p), err)
		}
		c.merge(part)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("reference.Load: %w", err)
	}
	return c, nil
}

func decodeFile(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var part Catalog
	if err := dec.Decode(&part); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &part, nil
}

func (c *Catalog) merge(o *Catalog) {
	c.Penalties = append(c.Penalties, o.Penalties...)
	c.Offenses = append(c.Offenses, o.Offenses...)
	c.MitigatingExamples = append(c.MitigatingExamples, o.MitigatingExamples...)
	c.Benefits = append(c.Benefits, o.Benefits...)
	c.GeneralRequirements = append(c.GeneralRequirements, o.GeneralRequirements...)
	c.Stages = append(c.Stages, o.Stages...)
	c.AlternativeOutcomes = append(c.AlternativeOutcomes, o.AlternativeOutcomes...)
	c.RightsOfAccused = append(c.RightsOfAccused, o.RightsOfAccused...)
	c.Resources = append(c.Resources, o.Resources...)
	c.EmergencyPhones = append(c.EmergencyPhones, o.EmergencyPhones...)
	c.Legislation = append(c.Legislation, o.Legislation...)
}
