// Package config loads and validates the peggen.yaml project manifest: the
// list of grammar files cmd/peggen operates on, per-file start-rule
// overrides, and a minimum-generator-version gate. Grounded on
// core/types/validation.go's compile-and-cache-by-hash combination of
// jsonschema/v5 and golang.org/x/mod/semver, adapted here from parameter
// validation to manifest validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// GeneratorVersion is this generator's own version string, compared
// against a manifest's minVersion constraint. It is deliberately a plain
// const rather than something injected at build time: the generator has
// no release pipeline in scope here, only the version-gate mechanism.
const GeneratorVersion = "v0.1.0"

// GrammarEntry names one grammar file a manifest lists, plus an optional
// start-rule override. When StartRule is empty the built Parser's own
// start rule (the grammar's first rule in source order, per spec.md
// §4.5) applies unchanged.
type GrammarEntry struct {
	Path      string `yaml:"path" json:"path"`
	StartRule string `yaml:"startRule,omitempty" json:"startRule,omitempty"`
}

// Manifest is the decoded, schema-validated content of a peggen.yaml
// project file.
type Manifest struct {
	Grammars   []GrammarEntry `yaml:"grammars" json:"grammars"`
	MinVersion string         `yaml:"minVersion,omitempty" json:"minVersion,omitempty"`
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("schema://peggen-manifest.json", strings.NewReader(manifestSchema)); err != nil {
			compileErr = fmt.Errorf("config: add schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("schema://peggen-manifest.json")
	})
	return compiled, compileErr
}

// Load reads path as YAML, decodes it into a Manifest, validates the
// decoded document against the manifest JSON Schema, and checks
// MinVersion (if set) against GeneratorVersion.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse is Load without the filesystem read, for callers that already
// have the manifest bytes (tests, embedded manifests).
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(&m); err != nil {
		return nil, err
	}

	if m.MinVersion != "" {
		if err := checkVersion(m.MinVersion); err != nil {
			return nil, err
		}
	}

	return &m, nil
}

// validate re-encodes m as JSON and checks it against manifestSchema.
// Round-tripping through JSON, rather than validating the yaml.Node
// tree directly, is deliberate: jsonschema/v5 only understands plain Go
// values (map[string]any, []any, ...), and going through
// encoding/json's decoder is how core/types/validation.go feeds it
// values too.
func validate(m *Manifest) error {
	sch, err := schema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("config: marshal for validation: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("config: decode for validation: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("config: manifest invalid: %w", err)
	}
	return nil
}

// checkVersion compares min (a manifest's minVersion, with or without a
// leading "v") against GeneratorVersion using golang.org/x/mod/semver,
// the same normalize-then-compare approach
// core/types/validation.go's "semver" format validator uses.
func checkVersion(min string) error {
	normalized := min
	if !strings.HasPrefix(normalized, "v") {
		normalized = "v" + normalized
	}
	if !semver.IsValid(normalized) {
		return fmt.Errorf("config: minVersion %q is not a valid semantic version", min)
	}
	if semver.Compare(GeneratorVersion, normalized) < 0 {
		return fmt.Errorf("config: manifest requires generator >= %s, this build is %s", normalized, GeneratorVersion)
	}
	return nil
}
