package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// envOverride maps an environment variable onto a dotted config path.
type envOverride struct {
	path    string
	numeric bool
}

var defaultEnvOverrides = map[string]envOverride{
	"VYRE_LOG_LEVEL":         {path: "application.log_level"},
	"VYRE_THEME":             {path: "gui.theme"},
	"VYRE_WINDOW_WIDTH":      {path: "gui.width", numeric: true},
	"VYRE_WINDOW_HEIGHT":     {path: "gui.height", numeric: true},
	"VYRE_WINDOW_STATE_PATH": {path: "window_state.path"},
}

// Load reads the YAML config at path on top of Default(), applies environment
// overrides and validates the result against the embedded JSON Schema. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	raw := map[string]interface{}{}

	yb, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(yb, &raw); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
		if raw == nil {
			raw = map[string]interface{}{}
		}
	}

	applyEnvOverrides(raw, defaultEnvOverrides)

	if err := validate(raw); err != nil {
		return nil, err
	}

	merged, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal merged config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// validate checks the decoded document against the embedded schema. yaml.v3
// decodes string-keyed mappings as map[string]interface{}, which the Go
// loader encodes as JSON directly.
func validate(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, "- "+e.String())
	}
	return fmt.Errorf("config validation failed:\n%s", strings.Join(problems, "\n"))
}

// applyEnvOverrides copies set environment variables into doc. Numeric values
// that do not parse are kept as strings so the schema reports them.
func applyEnvOverrides(doc map[string]interface{}, mapping map[string]envOverride) {
	for env, o := range mapping {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}

		var value interface{} = v
		if o.numeric {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				value = n
			}
		}
		setPath(doc, strings.Split(o.path, "."), value)
	}
}

// setPath stores value under keys, replacing anything in the way that is not
// a mapping.
func setPath(doc map[string]interface{}, keys []string, value interface{}) {
	if len(keys) == 1 {
		doc[keys[0]] = value
		return
	}

	child, ok := doc[keys[0]].(map[string]interface{})
	if !ok {
		child = map[string]interface{}{}
		doc[keys[0]] = child
	}
	setPath(child, keys[1:], value)
}
