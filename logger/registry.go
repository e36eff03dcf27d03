package logger

import (
	"strings"
	"sync"
)

// registry holds the loggers of named clients and the per-endpoint loggers
// derived from them.
var registry = &loggerRegistry{
	loggers:   make(map[string]*Logger),
	endpoints: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu        sync.RWMutex
	loggers   map[string]*Logger
	endpoints map[string]*Logger
}

// Register stores a named logger in the registry. Endpoint loggers derived
// from a previous logger of the same name are dropped.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
	prefix := EndpointComponent(name, "")
	for k := range registry.endpoints {
		if strings.HasPrefix(k, prefix) {
			delete(registry.endpoints, k)
		}
	}
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

// EndpointComponent is the component name of an endpoint of a client,
// "<client>.<endpoint>".
func EndpointComponent(client, endpoint string) string {
	return client + "." + endpoint
}

// Endpoint returns the logger for one endpoint of a registered client,
// tagged with EndpointComponent. Loggers of registered clients are cached;
// unregistered clients get the global logger, uncached.
func Endpoint(client, endpoint string) *Logger {
	component := EndpointComponent(client, endpoint)

	registry.mu.RLock()
	l, ok := registry.endpoints[component]
	base, registered := registry.loggers[client]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	if !registered {
		return GetGlobalLogger().WithComponent(component)
	}

	l = base.WithComponent(component)
	registry.mu.Lock()
	defer registry.mu.Unlock()
	// Register may have replaced the base meanwhile.
	if registry.loggers[client] != base {
		return l
	}
	if cached, ok := registry.endpoints[component]; ok {
		return cached
	}
	registry.endpoints[component] = l
	return l
}
