package store

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyUpdate is returned when an update carries no mutable
	// fields, e.g. the caller supplied only the identity field.
	ErrEmptyUpdate = errors.New("no updatable fields supplied")

	// ErrUnknownField is returned for attribute names outside the
	// entity's known field set.
	ErrUnknownField = errors.New("unknown field")
)

// FieldUpdate is a single field write within a partial update.
type FieldUpdate struct {
	Name  string
	Alias string
	Value any
}

// UpdateExpression is a store-agnostic description of a partial mutation:
// an ordered list of field writes plus an alias table mapping each field
// name to its placeholder. Every name is aliased regardless of whether it
// collides with a reserved word in the backing store's expression
// language; aliasing unconditionally avoids maintaining an allow list.
// Backends without an expression language are free to ignore the aliases.
type UpdateExpression struct {
	Sets  []FieldUpdate
	Names map[string]string
}

// BuildUpdate translates caller-supplied field/value pairs into an
// UpdateExpression. Identity fields are silently dropped so a payload that
// echoes the record key never rewrites it. Unknown field names are
// rejected rather than passed through. Values are passed along unmodified:
// no type coercion, and writing a nested attribute replaces it wholesale.
//
// Output order is sorted by field name so the same input always produces
// the same expression.
func BuildUpdate(updates map[string]any, allowed map[string]bool, identity ...string) (UpdateExpression, error) {
	protected := make(map[string]bool, len(identity))
	for _, name := range identity {
		protected[name] = true
	}

	names := make([]string, 0, len(updates))
	for name := range updates {
		if protected[name] {
			continue
		}
		if !allowed[name] {
			return UpdateExpression{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return UpdateExpression{}, ErrEmptyUpdate
	}
	sort.Strings(names)

	expr := UpdateExpression{
		Sets:  make([]FieldUpdate, 0, len(names)),
		Names: make(map[string]string, len(names)),
	}
	for _, name := range names {
		alias := "#" + name
		expr.Sets = append(expr.Sets, FieldUpdate{Name: name, Alias: alias, Value: updates[name]})
		expr.Names[name] = alias
	}
	return expr, nil
}
