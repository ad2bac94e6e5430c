package lazyconf

import (
	"io"
	"log/slog"
	"sort"

	"github.com/lazyconf/lazyconf-go/value"
)

// Environment holds the configuration and the registered builtins.
//
// An Environment is set up once and then used for any number of
// evaluations. Each evaluation runs in its own State, created with
// NewState or implicitly by Call.
type Environment struct {
	builtins map[string]Builtin
	config   Config
	fuel     *uint64
	logger   *slog.Logger
}

// NewEnvironment creates a new environment with default settings and the
// standard builtins.
func NewEnvironment() *Environment {
	env := EmptyEnvironment()
	registerDefaultBuiltins(env)
	return env
}

// EmptyEnvironment creates an environment with no builtins.
func EmptyEnvironment() *Environment {
	return &Environment{
		builtins: make(map[string]Builtin),
		config:   DefaultConfig(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// AddBuiltin registers a builtin under name, replacing any previous one.
func (e *Environment) AddBuiltin(name string, b Builtin) {
	if cb, ok := b.(*NativeCallback); ok && cb.name == "" {
		cb.name = name
	}
	e.builtins[name] = b
}

// AddFunction registers fn as a builtin with the given parameters.
func (e *Environment) AddFunction(name string, params []BuiltinParam, fn BuiltinFunc) {
	e.builtins[name] = &builtinFunc{name: name, params: params, fn: fn}
}

// RemoveBuiltin unregisters a builtin.
func (e *Environment) RemoveBuiltin(name string) {
	delete(e.builtins, name)
}

// Builtins returns the names of all registered builtins, sorted.
func (e *Environment) Builtins() []string {
	names := make([]string, 0, len(e.builtins))
	for name := range e.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) getBuiltin(name string) (Builtin, bool) {
	b, ok := e.builtins[name]
	return b, ok
}

// SetConfig validates and applies cfg.
func (e *Environment) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config = cfg
	if cfg.Fuel == 0 {
		e.fuel = nil
	} else {
		fuel := cfg.Fuel
		e.fuel = &fuel
	}
	e.logger.Debug("config applied",
		slog.Int("extend_threshold", cfg.ExtendThreshold),
		slog.Uint64("fuel", cfg.Fuel),
		slog.Bool("debug", cfg.Debug))
	return nil
}

// Config returns the current settings.
func (e *Environment) Config() Config {
	return e.config
}

// SetExtendThreshold sets the combined length above which concat builds a
// view. Negative values are treated as zero.
func (e *Environment) SetExtendThreshold(n int) {
	e.config.ExtendThreshold = max(n, 0)
}

// SetFuel sets the call budget of each evaluation. nil disables it.
func (e *Environment) SetFuel(fuel *uint64) {
	if fuel == nil {
		e.fuel = nil
		e.config.Fuel = 0
		return
	}
	f := *fuel
	e.fuel = &f
	e.config.Fuel = f
}

// SetDebug enables recording of builtin call paths on errors.
func (e *Environment) SetDebug(enabled bool) {
	e.config.Debug = enabled
}

// SetLogger sets the logger. nil discards all records.
func (e *Environment) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.logger = logger
}

// SetLogOutput logs as text to w at the configured log level.
func (e *Environment) SetLogOutput(w io.Writer) {
	e.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: e.config.Level()}))
}

// Logger returns the logger.
func (e *Environment) Logger() *slog.Logger {
	return e.logger
}

// NewState starts a new evaluation with a fresh fuel budget.
func (e *Environment) NewState() *State {
	return newState(e)
}

// Call invokes a builtin in a new evaluation.
//
// Example:
//
//	env := lazyconf.NewEnvironment()
//	rv, err := env.Call("range", []value.Value{value.FromInt(1), value.FromInt(3)}, nil)
func (e *Environment) Call(name string, args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
	return e.NewState().Call(name, args, kwargs)
}

// Callable returns the named builtin as a value.Callable, bound to a new
// evaluation. It can be handed to value.Array.Map.
func (e *Environment) Callable(name string) (value.Callable, error) {
	fn, err := e.NewState().Builtin(name)
	if err != nil {
		return nil, err
	}
	c, _ := fn.AsCallable()
	return c, nil
}
