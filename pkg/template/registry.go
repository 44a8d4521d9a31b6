package template

import (
	"slices"
	"sync"
)

type registryEntry struct {
	once sync.Once
	seed func() *Template
	tpl  *Template
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*registryEntry)
)

// RegisterDefault installs the seed used to build kind's default template
// on first access. Registering again discards any default already built.
func RegisterDefault(kind string, seed func() *Template) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = &registryEntry{seed: seed}
}

// Default returns kind's live default template, building it exactly once.
// Kinds never registered get a blank default. Edits to the returned
// template affect objects constructed afterwards.
func Default(kind string) *Template {
	registryMu.Lock()
	e, ok := registry[kind]
	if !ok {
		e = &registryEntry{}
		registry[kind] = e
	}
	registryMu.Unlock()

	e.once.Do(func() {
		if e.seed != nil {
			e.tpl = e.seed()
		}
		if e.tpl == nil {
			e.tpl = New()
		}
	})
	return e.tpl
}

// ResetDefault discards kind's built default so the next Default call
// runs its seed again.
func ResetDefault(kind string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if e, ok := registry[kind]; ok {
		registry[kind] = &registryEntry{seed: e.seed}
	}
}

// Kinds returns the registered kinds, sorted.
func Kinds() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
