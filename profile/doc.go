// Package profile provides optional runtime profiling for the sval
// command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof"
// build tag. When built without the tag (the default), all operations
// are no-ops with zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve
// the list programmatically.
//
//	var cfg profile.Config = func() (string, string, bool) {
//		return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	defer cfg.Start().Stop()
package profile
