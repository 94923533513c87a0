package tmpl

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// maxCallStackSize bounds recursion depth so runaway recursion becomes
// a captured failure instead of exhausting the Go stack.
const maxCallStackSize = 4096

// outcome is the engine-internal result of evaluating one expression
// region. The projector converts it into the caller-facing shape.
type outcome struct {
	val goja.Value
	err error
}

// Outcome is the tagged result of evaluating a single-region template
// in raw mode, as returned by [RenderOutcome]. Exactly one evaluation
// outcome exists per region; there are no partial results.
type Outcome struct {
	// Value is the computed value with its exported Go type.
	// It is meaningful only when Err is nil.
	Value any

	// Err describes the compile-time or run-time failure, if any.
	Err error
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool { return o.Err != nil }

// execute invokes the compiled unit with the bound values under the
// configured trust policy. Every thrown error, type error, interrupt,
// and panic is captured into the outcome; execute never lets an
// exception propagate to the caller.
func (c config) execute(
	ctx context.Context,
	unit *compiled,
	bound binding,
) (out outcome) {
	vm := goja.New()
	vm.SetMaxCallStackSize(maxCallStackSize)

	if c.sandbox {
		c.installAllowed(vm)
	} else {
		c.installBuiltins(vm)
	}

	defer func() {
		if r := recover(); r != nil {
			out = outcome{err: ErrExecute.Wrap(fmt.Errorf("%v", r))}
		}
	}()

	stop := c.watchdog(ctx, vm)
	defer stop()

	fnVal, err := vm.RunProgram(unit.prog)
	if err != nil {
		return outcome{err: ErrExecute.Wrap(err)}
	}

	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return outcome{err: ErrNotCallable}
	}

	args := make([]goja.Value, len(bound.values))
	for i, v := range bound.values {
		args[i] = vm.ToValue(v)
	}

	res, err := fn(goja.Undefined(), args...)
	if err != nil {
		return outcome{err: ErrExecute.Wrap(err)}
	}

	return outcome{val: res}
}

// installBuiltins exposes the full built-in ambient global set on the
// runtime (unrestricted policy).
func (c config) installBuiltins(vm *goja.Runtime) {
	for name, value := range c.builtinGlobals() {
		vm.Set(name, value)
	}
}

// installAllowed exposes only the allow-listed subset of the built-in
// globals (restricted policy) and removes dynamic code construction.
// Any other ambient name resolves to a ReferenceError at run time
// rather than falling back to host state.
func (c config) installAllowed(vm *goja.Runtime) {
	builtins := c.builtinGlobals()

	for _, name := range c.allowed {
		if value, ok := builtins[name]; ok {
			vm.Set(name, value)
		}
	}

	vm.Set("eval", goja.Undefined())
	vm.Set("Function", goja.Undefined())
}

// watchdog interrupts the runtime when the advisory timeout or the
// caller's context expires. goja honors interrupts only between
// statements, so enforcement is best-effort: a native call that blocks
// cannot be preempted mid-flight.
//
// The unsafe-eval path skips the watchdog entirely.
func (c config) watchdog(
	ctx context.Context,
	vm *goja.Runtime,
) (stop func()) {
	if c.unsafeEval || (c.timeout <= 0 && ctx.Done() == nil) {
		return func() {}
	}

	quit := make(chan struct{})

	go func() {
		var deadline <-chan time.Time

		if c.timeout > 0 {
			timer := time.NewTimer(c.timeout)
			defer timer.Stop()

			deadline = timer.C
		}

		select {
		case <-deadline:
			vm.Interrupt("timeout after " + c.timeout.String())

		case <-ctx.Done():
			vm.Interrupt(context.Cause(ctx))

		case <-quit:
		}
	}()

	return func() {
		close(quit)
		vm.ClearInterrupt()
	}
}
