package logger

import "sync"

// Registry shares one Logger per distinct set of options.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// defaultRegistry backs GetLogger for the whole process.
var defaultRegistry = NewRegistry()

// Get returns the logger for the resolved options, building it on first use.
// A failed build stores nothing.
func (r *Registry) Get(opts ...Option) (*Logger, error) {
	o := resolveOptions(opts)
	key := o.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[key]; ok {
		return l, nil
	}
	l, err := newLogger(o)
	if err != nil {
		return nil, err
	}
	r.loggers[key] = l
	return l, nil
}

// Len returns the number of loggers built so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loggers)
}

// GetLogger returns the process-wide logger for opts. Calls with equivalent
// options get the same *Logger.
func GetLogger(opts ...Option) (*Logger, error) {
	return defaultRegistry.Get(opts...)
}
