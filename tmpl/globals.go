package tmpl

// This file defines the built-in ambient globals available to template
// expressions under the unrestricted trust policy. The set is lazily
// initialized once per process via builtinCache and cloned on every
// access so callers may mutate the returned map without affecting the
// shared cache.
//
// Under the restricted policy, individual names from this set become
// visible only when listed in the allowed-globals option.

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/mung"

	"github.com/ardnew/sval/log"
)

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	builtinOnce  sync.Once
	builtinCache map[string]any
)

// makeBuiltinCache returns a clone of the lazily-initialized,
// process-scoped set of built-in globals.
func makeBuiltinCache() map[string]any {
	builtinOnce.Do(func() {
		builtinCache = map[string]any{
			// Filesystem predicates.
			"file": map[string]any{
				"exists":    fileExists,
				"isDir":     fileIsDir,
				"isRegular": fileIsRegular,
				"isSymlink": fileIsSymlink,
			},

			// Path manipulation functions.
			"path": map[string]any{
				"abs": pathAbs,
				"cat": pathCat,
				"rel": pathRel,
			},

			// PATH-like string manipulation via mung.
			"mung": map[string]any{
				"prefix":   mungPrefix,
				"prefixif": mungPrefixIf,
			},

			// Console shim routed through the default logger.
			"console": map[string]any{
				"log":   consoleLog,
				"error": consoleError,
			},
		}
	})

	return maps.Clone(builtinCache)
}

// builtinGlobals returns the ambient global set for one evaluation,
// including the env() accessor over the configured process environment.
func (c config) builtinGlobals() map[string]any {
	globals := makeBuiltinCache()
	globals["env"] = envFunc(buildProcessEnvMap(c.processEnv))

	return globals
}

// BuiltinNames returns the names installed as ambient globals under the
// unrestricted policy. Useful for completion and for allow lists.
func BuiltinNames() []string {
	globals := makeBuiltinCache()

	names := make([]string, 0, len(globals)+1)
	for name := range globals {
		names = append(names, name)
	}

	// "env" is populated per evaluation with the process environment.
	return append(names, "env")
}

// ---------------------------------------------------------------------------
// Console
// ---------------------------------------------------------------------------

func consoleLog(args ...any) {
	log.Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func consoleError(args ...any) {
	log.Error(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// ---------------------------------------------------------------------------
// Filesystem predicates
// ---------------------------------------------------------------------------

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !os.IsNotExist(err)
}

func fileIsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

func fileIsRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func fileIsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// ---------------------------------------------------------------------------
// Path manipulation functions
// ---------------------------------------------------------------------------

func pathAbs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return p
}

func pathCat(elem ...string) string {
	return filepath.Join(elem...)
}

func pathRel(from, to string) string {
	p, err := filepath.Rel(pathAbs(from), pathAbs(to))
	if err != nil {
		return pathCat(from, to)
	}

	return p
}

// ---------------------------------------------------------------------------
// PATH-like string manipulation (mung)
// ---------------------------------------------------------------------------

func mungPrefix(key string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

func mungPrefixIf(
	key string,
	predicate func(string) bool,
	prefix ...string,
) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(predicate),
	).String()
}

// ---------------------------------------------------------------------------
// Environment variable function
// ---------------------------------------------------------------------------

// buildProcessEnvMap converts a "KEY=VALUE" string slice to a map.
// If envList is nil, os.Environ() is used.
func buildProcessEnvMap(envList []string) map[string]string {
	if len(envList) == 0 {
		envList = os.Environ()
	}

	result := make(map[string]string, len(envList))

	for _, entry := range envList {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			result[key] = value
		}
	}

	return result
}

// envFunc returns the built-in env() function that provides process
// environment access to template expressions.
func envFunc(processEnv map[string]string) func(string) string {
	return func(key string) string {
		return processEnv[key]
	}
}
