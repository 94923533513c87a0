// Package cli contains the command line interface for sval.
//
// # Usage
//
// Render a template against one or more YAML context files:
//
//	sval --context vars.yaml 'Hello {name}'
//
// Templates may also be read from a file or stdin:
//
//	sval --file greeting.tmpl --context vars.yaml
//	echo 'Hello {name}' | sval --context vars.yaml
//
// # Configuration
//
// Flag defaults may be set in a configuration file located in the
// user configuration directory (config.yaml or config.json). YAML keys
// map to flag names, with underscores accepted in place of hyphens.
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof ./...
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//
// # Examples
//
//	# Substitute variables into a template string
//	sval --context vars.yaml 'listen on {host}:{port}'
//
//	# Return the raw typed value of a single-region template as JSON
//	sval --raw --output json --context vars.yaml '{items.filter(i => i.ok)}'
//
//	# Evaluate untrusted input under the restricted policy
//	sval --sandbox --allow env --timeout 100ms --context vars.yaml "$TMPL"
package cli
