package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The YAML document must be a mapping of flag names to values. Flag names
// with hyphens (e.g., "log-level") may use underscores in the config file
// (e.g., "log_level"); both forms are recognized.
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		// Malformed config - ignore it and let Kong use defaults
		return config{}, nil
	}

	return config(normalize(raw)), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	underscoreName := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize converts decoded YAML values to forms Kong can parse.
// Kong requires numbers as strings for parsing.
func normalize(raw map[string]any) map[string]any {
	result := make(map[string]any, len(raw))

	for key, val := range raw {
		switch num := val.(type) {
		case int64:
			result[key] = strconv.FormatInt(num, 10)
		case uint64:
			result[key] = strconv.FormatUint(num, 10)
		case float64:
			result[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			result[key] = val
		}
	}

	return result
}
