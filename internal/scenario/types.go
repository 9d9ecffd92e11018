package scenario

import "gopkg.in/yaml.v3"

// RawConfig is a scenario file as written in YAML.
//
//	version: "1"
//	seed: 42
//	trials: 1000
//	dice:
//	  - name: loaded
//	    faces: [1, 2, 3, 4, 5, 6]
//	    weights: [1, 1, 1, 1, 1, 5]
//	    copies: 2
type RawConfig struct {
	Version string      `yaml:"version"`
	Seed    *uint64     `yaml:"seed,omitempty"`
	Trials  *int        `yaml:"trials,omitempty"`
	Dice    []DieConfig `yaml:"dice,omitempty"`
	Notes   string      `yaml:"notes,omitempty"`
}

// DieConfig describes one die, or several identical ones when Copies > 1.
// Faces stay as YAML nodes until Build decodes them into the label type.
type DieConfig struct {
	Name    string      `yaml:"name,omitempty"`
	Faces   []yaml.Node `yaml:"faces"`
	Weights []float64   `yaml:"weights,omitempty"` // aligned with faces; empty means all 1.0
	Copies  int         `yaml:"copies,omitempty"`  // 0 means 1
}

// Overrides take precedence over every file.
type Overrides struct {
	Seed   *uint64
	Trials *int
}
