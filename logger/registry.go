package logger

import (
	"maps"
	"slices"
	"sync"
)

// Components that Init registers a logger for.
const (
	ComponentConfig  = "config"
	ComponentPlan    = "plan"
	ComponentObserve = "observe"
)

var components = []string{ComponentConfig, ComponentPlan, ComponentObserve}

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// derive replaces the named loggers with components of base.
func (r *loggerRegistry) derive(base *Logger, names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		r.loggers[name] = base.WithComponent(name)
	}
}

// Register stores a named logger in the registry. Init replaces the loggers
// of its own components, so register overrides for those after Init.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers loggers derived from the global one for names
// beyond the components Init covers.
func RegisterDefaults(names ...string) {
	registry.derive(GetGlobalLogger(), names)
}

// Names lists the registered logger names in order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return slices.Sorted(maps.Keys(registry.loggers))
}
