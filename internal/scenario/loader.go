package scenario

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultScenario names the base file every scenario is merged onto.
const DefaultScenario = "default"

// Paths helper for default/scenario files.
type Paths struct {
	BaseDir string // e.g. ./config
}

func (p Paths) DefaultPath() string {
	return p.ScenarioPath(DefaultScenario)
}

func (p Paths) ScenarioPath(name string) string {
	return filepath.Join(p.BaseDir, "scenarios", name+".yaml")
}

// Loader reads YAML scenarios and merges default → scenario.
type Loader struct {
	paths  Paths
	logger *log.Logger

	mu    sync.RWMutex
	cache map[string]RawConfig
}

// NewLoader creates a scenario loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths:  Paths{BaseDir: baseDir},
		logger: log.Default(),
		cache:  make(map[string]RawConfig),
	}
}

// SetLogger replaces the logger used for reload notices.
func (l *Loader) SetLogger(logger *log.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = logger
}

// Paths returns the file layout the loader reads from.
func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged loads default.yaml and merges the named scenario over it.
// An empty name or DefaultScenario returns the default file alone. A missing
// default file counts as empty; a missing named scenario is an error.
func (l *Loader) LoadMerged(name string) (RawConfig, error) {
	if name == "" {
		name = DefaultScenario
	}
	l.mu.RLock()
	if cfg, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, _, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if name != DefaultScenario {
		cfg, found, err := readYAML(l.paths.ScenarioPath(name))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read scenario %s: %w", name, err)
		}
		if !found {
			return RawConfig{}, fmt.Errorf("%w: scenario %s not found", ErrScenarioConfig, name)
		}
		merged = mergeRaw(defCfg, cfg)
	}

	l.mu.Lock()
	l.cache[name] = merged
	l.cache[DefaultScenario] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Called by the watcher on file changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return found=false, no error.
func readYAML(path string) (RawConfig, bool, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, true, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

// mergeRaw overlays b onto a: set scalars in b win, a non-empty dice list in b replaces a's.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.Seed != nil {
		s := *b.Seed
		out.Seed = &s
	}
	if b.Trials != nil {
		n := *b.Trials
		out.Trials = &n
	}
	if len(b.Dice) > 0 {
		out.Dice = append([]DieConfig(nil), b.Dice...)
	}
	return out
}
