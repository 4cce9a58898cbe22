// Package driver is the ambient configuration and dependency-fetch layer
// around the interpreter: parsing ziria-eval.yml (via gopkg.in/yaml.v3)
// and cloning the Ziria standard-library block repositories the type
// checker's builtin table would be seeded from (via
// github.com/go-git/go-git/v5), adapted from the teacher's package.yml
// manifest loader and git-backed `able deps install/update` pattern.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the parsed contents of ziria-eval.yml: approximator limits,
// where to look for Ziria standard-library blocks on disk, and which git
// repositories to fetch them from. The limits and the search paths are
// parsed and validated here; neither the interpreter nor the CLI reads them.
type Config struct {
	Path string

	// BranchLimit is read from branch_limit and must be non-negative.
	// Approximate/Satisfiable/Provable do not consult it.
	BranchLimit int
	// DepthLimit is read from depth_limit and must be non-negative. The
	// evaluator does not consult it.
	DepthLimit int

	StdlibPaths []string

	Sources     map[string]*SourceSpec
	SourceOrder []string

	sourceEntries []configSourceEntry
}

// SourceSpec names a git repository holding Ziria standard-library blocks.
type SourceSpec struct {
	Name   string
	Git    string
	Rev    string
	Tag    string
	Branch string
}

type configSourceEntry struct {
	sanitized string
	spec      *SourceSpec
}

// ValidationError aggregates configuration validation failures, carried
// over from the teacher's manifest validator.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("ziria-eval.yml validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig parses ziria-eval.yml from disk, returning a validated config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(absPath), nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no ziria-eval.yml is
// present: unlimited branch/depth exploration and no stdlib sources.
func DefaultConfig(path string) *Config {
	return &Config{
		Path:    path,
		Sources: map[string]*SourceSpec{},
	}
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.BranchLimit < 0 {
		errs.Issues = append(errs.Issues, "branch_limit must not be negative")
	}
	if c.DepthLimit < 0 {
		errs.Issues = append(errs.Issues, "depth_limit must not be negative")
	}
	seen := make(map[string]string, len(c.sourceEntries))
	for _, entry := range c.sourceEntries {
		src := entry.spec
		if src == nil {
			continue
		}
		if src.Name == "" {
			errs.Issues = append(errs.Issues, "sources must not use empty keys")
			continue
		}
		if other, exists := seen[entry.sanitized]; exists {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources %q and %q collide", other, src.Name))
		} else {
			seen[entry.sanitized] = src.Name
		}
		if src.Git == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("source %q missing git URL", src.Name))
		}
		refs := 0
		for _, r := range []string{src.Rev, src.Tag, src.Branch} {
			if r != "" {
				refs++
			}
		}
		if refs > 1 {
			errs.Issues = append(errs.Issues, fmt.Sprintf("source %q must specify at most one of rev, tag, branch", src.Name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindSource looks up a declared source by name.
func (c *Config) FindSource(name string) (*SourceSpec, bool) {
	if c == nil {
		return nil, false
	}
	src, ok := c.Sources[name]
	return src, ok
}

//-----------------------------------------------------------------------------
// YAML decoding
//-----------------------------------------------------------------------------

type configFile struct {
	BranchLimit int           `yaml:"branch_limit"`
	DepthLimit  int           `yaml:"depth_limit"`
	StdlibPaths stringList    `yaml:"stdlib_paths"`
	Sources     sourceMap     `yaml:"sources"`
}

type sourceYAML struct {
	Git    string `yaml:"git"`
	Rev    string `yaml:"rev"`
	Tag    string `yaml:"tag"`
	Branch string `yaml:"branch"`
}

// sourceMap preserves declaration order, the same pattern the teacher uses
// for manifest.targetMap, since source fetch order should match the
// file a reader wrote, not Go's randomized map iteration order.
type sourceMap struct {
	items []sourceMapEntry
}

type sourceMapEntry struct {
	name string
	spec *sourceYAML
}

func (sm *sourceMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 {
		sm.items = nil
		return nil
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		sm.items = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("config: sources must be a mapping")
	}
	items := make([]sourceMapEntry, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("config: sources must not use empty keys")
		}
		entry := new(sourceYAML)
		if err := valNode.Decode(entry); err != nil {
			return fmt.Errorf("config: source %q: %w", key, err)
		}
		items = append(items, sourceMapEntry{name: key, spec: entry})
	}
	sm.items = items
	return nil
}

// stringList decodes a field that may be written as a single scalar or a
// YAML sequence (the teacher's manifest.go "permissive scalar-or-list"
// pattern for `authors`).
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("config: expected string or sequence but found %s", value.ShortTag())
	}
}

func (cf configFile) toConfig(path string) *Config {
	cfg := &Config{
		Path:          path,
		BranchLimit:   cf.BranchLimit,
		DepthLimit:    cf.DepthLimit,
		StdlibPaths:   []string(cf.StdlibPaths),
		Sources:       make(map[string]*SourceSpec, len(cf.Sources.items)),
		SourceOrder:   make([]string, 0, len(cf.Sources.items)),
		sourceEntries: make([]configSourceEntry, 0, len(cf.Sources.items)),
	}
	for _, item := range cf.Sources.items {
		if item.spec == nil {
			continue
		}
		spec := &SourceSpec{
			Name:   item.name,
			Git:    strings.TrimSpace(item.spec.Git),
			Rev:    strings.TrimSpace(item.spec.Rev),
			Tag:    strings.TrimSpace(item.spec.Tag),
			Branch: strings.TrimSpace(item.spec.Branch),
		}
		cfg.Sources[item.name] = spec
		cfg.SourceOrder = append(cfg.SourceOrder, item.name)
		cfg.sourceEntries = append(cfg.sourceEntries, configSourceEntry{sanitized: item.name, spec: spec})
	}
	return cfg
}
