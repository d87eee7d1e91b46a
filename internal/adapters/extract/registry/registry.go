package registry

import "github.com/Arhan13/codegen/internal/ports"

// Registry holds named Extractor implementations. The regex scanner is the
// only one today; a syntax-tree extractor can be registered alongside it
// without touching the pipeline.
type Registry struct {
	byName map[string]ports.Extractor
}

func New() *Registry { return &Registry{byName: map[string]ports.Extractor{}} }

func (r *Registry) Register(e ports.Extractor) { r.byName[e.Name()] = e }

func (r *Registry) Get(name string) (ports.Extractor, bool) {
	e, ok := r.byName[name]
	return e, ok
}
