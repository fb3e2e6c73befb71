package resolve

import (
	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"

	"github.com/bril-lang/briltxt/bril"
	"github.com/bril-lang/briltxt/text"
)

// Option configures a resolution.
type Option func(*resolver)

// WithLogger makes the resolver log module-load progress at V(1). The
// default logger discards everything.
func WithLogger(log logr.Logger) Option {
	return func(r *resolver) {
		r.log = log
	}
}

// resolver accumulates the merged function namespace while walking the
// import graph.
type resolver struct {
	loader Loader
	log    logr.Logger

	pending []string                 // FIFO worklist of modules to merge
	seen    map[string]struct{}      // modules already merged (or queued and popped)
	merged  map[string]bril.Function // function name -> definition
	order   []string                 // function names in accumulation order
}

// Resolve transitively loads, parses, and merges every module the
// program imports, producing a single program with no imports left. A
// program without imports is returned unchanged.
//
// Modules are processed in first-seen order: the program's own imports
// in source order, then each module's unseen imports as they appear.
// The order only decides which of several independent name collisions
// is reported first; it is fixed here so reports are reproducible. Each
// module is loaded at most once, so diamond-shaped import graphs merge
// cleanly.
//
// Failures are fatal: a module the loader cannot produce is a
// *ModuleLoadError, a function name already present in the accumulated
// namespace is a *bril.DuplicateFunctionError, and a module that does
// not parse surfaces its *text.SyntaxError. A program that already
// defines the same name twice is rejected the same way before any
// module loads.
func Resolve(program *bril.Program, loader Loader, opts ...Option) (*bril.Program, error) {
	if len(program.Imports) == 0 {
		return program, nil
	}

	// A structured program can reach the resolver without ever passing
	// through the transformer's duplicate check, so the seed namespace
	// must be validated before modules merge into it.
	if dups := bril.DuplicateNames(program.Functions); len(dups) > 0 {
		return nil, &bril.DuplicateFunctionError{Names: dups}
	}

	r := &resolver{
		loader: loader,
		log:    logr.Discard(),
		seen:   make(map[string]struct{}),
		merged: make(map[string]bril.Function, len(program.Functions)),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, fn := range program.Functions {
		r.merged[fn.Name] = fn
		r.order = append(r.order, fn.Name)
	}
	r.pending = append(r.pending, program.Imports...)

	for len(r.pending) > 0 {
		name := r.pending[0]
		r.pending = r.pending[1:]
		if _, done := r.seen[name]; done {
			continue
		}
		r.seen[name] = struct{}{}

		if err := r.mergeModule(name); err != nil {
			return nil, err
		}
	}

	return &bril.Program{Functions: r.functions()}, nil
}

// mergeModule loads and parses one module, queues its unseen imports,
// and merges its functions into the accumulated namespace.
func (r *resolver) mergeModule(name string) error {
	r.log.V(1).Info("loading module", "module", name)

	data, err := r.loader.Load(name)
	if err != nil {
		return &ModuleLoadError{Name: name, Err: err}
	}

	module, err := parseModule(string(data))
	if err != nil {
		return errors.Wrapf(err, "module %s", name)
	}

	for _, imp := range module.Imports {
		if _, done := r.seen[imp]; !done {
			r.pending = append(r.pending, imp)
		}
	}

	// A loaded module may only introduce new names. The check is against
	// the namespace accumulated so far: two later modules that both
	// define the same fresh name collide when the second one merges.
	var dups []string
	for _, fn := range module.Functions {
		if _, taken := r.merged[fn.Name]; taken {
			dups = append(dups, fn.Name)
		}
	}
	if len(dups) > 0 {
		return &bril.DuplicateFunctionError{Names: dups}
	}

	for _, fn := range module.Functions {
		r.merged[fn.Name] = fn
		r.order = append(r.order, fn.Name)
	}
	r.log.V(1).Info("merged module", "module", name, "functions", len(module.Functions))

	return nil
}

func (r *resolver) functions() []bril.Function {
	functions := make([]bril.Function, 0, len(r.order))
	for _, name := range r.order {
		functions = append(functions, r.merged[name])
	}
	return functions
}

func parseModule(source string) (*bril.Program, error) {
	file, err := text.Parse(source)
	if err != nil {
		return nil, err
	}
	return text.Lower(file)
}
