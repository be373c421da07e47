// Package projectconfig provides the ProjectConfig struct and loader for
// .assistant.yaml configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spboyer/assistant/internal/validation"
)

// FileName is the configuration file looked up from the working directory.
const FileName = ".assistant.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultOutputDir   = "."
	DefaultGreeting    = "Friend"
	DefaultMinOptional = 2
	DefaultMaxOptional = 4
)

// QuestionsConfig bounds how many optional questions are asked per pass.
type QuestionsConfig struct {
	MinOptional *int `yaml:"min_optional,omitempty"`
	MaxOptional *int `yaml:"max_optional,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .assistant.yaml.
type ProjectConfig struct {
	OutputDir string          `yaml:"output_dir,omitempty"`
	Greeting  string          `yaml:"greeting,omitempty"`
	Questions QuestionsConfig `yaml:"questions,omitempty"`

	// Path is the file the values were read from, empty for defaults.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		OutputDir: DefaultOutputDir,
		Greeting:  DefaultGreeting,
		Questions: QuestionsConfig{
			MinOptional: intPtr(DefaultMinOptional),
			MaxOptional: intPtr(DefaultMaxOptional),
		},
	}
}

// Load finds .assistant.yaml by walking up from startDir (max 10 levels),
// validates it against the config schema, unmarshals it, and fills in missing
// fields with defaults. If no config file is found, returns defaults with a
// nil error. Real I/O errors (e.g. permission denied) are returned.
func Load(startDir string) (*ProjectConfig, error) {
	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("No config file found, using defaults", "startDir", startDir)
			return New(), nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	return parse(path, data)
}

// LoadFile reads the config at path, whatever its name, and fills in
// defaults the same way Load does.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*ProjectConfig, error) {
	if errs := validation.ValidateConfigBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := New()
	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	slog.Debug("Loaded config", "path", path, "outputDir", cfg.OutputDir)
	return cfg, nil
}

// MinOptional returns the configured lower bound.
func (c *ProjectConfig) MinOptional() int {
	if c.Questions.MinOptional == nil {
		return DefaultMinOptional
	}
	return *c.Questions.MinOptional
}

// MaxOptional returns the configured upper bound.
func (c *ProjectConfig) MaxOptional() int {
	if c.Questions.MaxOptional == nil {
		return DefaultMaxOptional
	}
	return *c.Questions.MaxOptional
}

// Validate checks the constraints the schema cannot express on its own.
func (c *ProjectConfig) Validate() error {
	if c.MinOptional() > c.MaxOptional() {
		return fmt.Errorf("questions.min_optional (%d) is greater than questions.max_optional (%d)",
			c.MinOptional(), c.MaxOptional())
	}
	return nil
}

// Find returns the path of the .assistant.yaml that Load would read from
// startDir. It returns an error wrapping os.ErrNotExist if there is none.
func Find(startDir string) (string, error) {
	path, _, err := findConfigFile(startDir)
	return path, err
}

// findConfigFile walks up from dir looking for .assistant.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.Greeting != "" {
		dst.Greeting = src.Greeting
	}
	if src.Questions.MinOptional != nil {
		dst.Questions.MinOptional = src.Questions.MinOptional
	}
	if src.Questions.MaxOptional != nil {
		dst.Questions.MaxOptional = src.Questions.MaxOptional
	}
}

func intPtr(n int) *int {
	return &n
}
