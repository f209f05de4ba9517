// Package registry keeps the set of directives a schema declares.
//
// A Registry starts out with the specified directives. Custom directives are added while the
// schema is built, afterwards the registry is only read.
package registry

import (
	"github.com/cespare/xxhash/v2"
	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/directiveprinter"
	"github.com/wundergraph/graphql-directives/pkg/lexer/position"
	"github.com/wundergraph/graphql-directives/pkg/operationreport"
)

type Option func(r *Registry)

func WithLogger(log abstractlogger.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithoutSpecifiedDirectives starts the registry empty.
func WithoutSpecifiedDirectives() Option {
	return func(r *Registry) {
		r.seedSpecified = false
	}
}

// WithProtectedSpecifiedDirectives rejects custom definitions that reuse a specified directive name.
func WithProtectedSpecifiedDirectives() Option {
	return func(r *Registry) {
		r.protectSpecified = true
	}
}

type entry struct {
	definition  directive.Definition
	fingerprint uint64
	specified   bool // seeded by the registry, may be replaced once
}

type Registry struct {
	log              abstractlogger.Logger
	seedSpecified    bool
	protectSpecified bool
	entries          []entry
	index            map[string]int
}

func New(opts ...Option) *Registry {
	r := &Registry{
		log:           abstractlogger.NoopLogger,
		seedSpecified: true,
		index:         map[string]int{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.seedSpecified {
		for _, specified := range directive.SpecifiedDirectives() {
			r.entries = append(r.entries, entry{
				definition:  specified,
				fingerprint: Fingerprint(specified),
				specified:   true,
			})
			r.index[specified.Name()] = len(r.entries) - 1
		}
	}
	return r
}

// Fingerprint hashes the SDL form of a definition, equal definitions share a fingerprint.
func Fingerprint(definition directive.Definition) uint64 {
	printed, err := directiveprinter.PrintString(definition)
	if err != nil {
		return xxhash.Sum64String(definition.String())
	}
	return xxhash.Sum64String(printed)
}

// Add registers definitions in order. Redeclaring an equal definition is a no-op,
// a different definition with a known name is reported. A custom definition of a
// specified directive replaces the built in one unless it is protected.
func (r *Registry) Add(definitions ...directive.Definition) error {
	report := operationreport.Report{}
	for _, definition := range definitions {
		if !directive.IsDirective(definition) {
			_, err := directive.AssertDirective(definition)
			report.AddInternalError(err)
			continue
		}
		r.add(definition, &report)
	}
	return report.ErrorOrNil()
}

func (r *Registry) add(definition directive.Definition, report *operationreport.Report) {
	name := definition.Name()
	fingerprint := Fingerprint(definition)

	i, exists := r.index[name]
	if !exists {
		r.entries = append(r.entries, entry{definition: definition, fingerprint: fingerprint})
		r.index[name] = len(r.entries) - 1
		r.log.Debug("registry.Registry.Add",
			abstractlogger.String("directive", definition.String()),
		)
		return
	}

	current := r.entries[i]
	if current.fingerprint == fingerprint {
		r.log.Debug("registry.Registry.Add",
			abstractlogger.String("directive", definition.String()),
			abstractlogger.String("status", "duplicate"),
		)
		return
	}
	if current.specified {
		if r.protectSpecified {
			report.AddExternalError(operationreport.ErrSpecifiedDirectiveRedefined(name, positionOf(definition)))
			return
		}
		r.entries[i] = entry{definition: definition, fingerprint: fingerprint}
		r.log.Info("registry.Registry.Add",
			abstractlogger.String("directive", definition.String()),
			abstractlogger.String("status", "replaced specified directive"),
		)
		return
	}
	report.AddExternalError(operationreport.ErrDirectiveNameMustBeUnique(name, positionOf(current.definition), positionOf(definition)))
}

func positionOf(definition directive.Definition) position.Position {
	if d, ok := definition.(*directive.Directive); ok && d.ASTNode() != nil {
		return d.ASTNode().Position
	}
	return position.Position{}
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (directive.Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].definition, true
}

// All returns every registered definition in registration order.
func (r *Registry) All() []directive.Definition {
	out := make([]directive.Definition, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].definition
	}
	return out
}

// Custom returns the definitions a schema printer has to print, that is all but the specified ones.
func (r *Registry) Custom() []directive.Definition {
	out := make([]directive.Definition, 0, len(r.entries))
	for i := range r.entries {
		if directive.IsSpecifiedDirective(r.entries[i].definition) {
			continue
		}
		out = append(out, r.entries[i].definition)
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}
