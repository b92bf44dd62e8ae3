package meta

import (
	"context"
	"errors"
	"fmt"
)

// NoBaseType is substituted when a source cannot name a type's ancestor.
const NoBaseType = "none"

// ErrModuleNotFound is returned when a namespace cannot be resolved to a
// loadable unit of code.
var ErrModuleNotFound = errors.New("module not found")

// NamespaceError reports a namespace that no type of a loaded unit belongs
// to. Known holds the namespaces the unit does define, for suggestions.
type NamespaceError struct {
	Namespace string
	Where     string
	Known     []string
}

func (e *NamespaceError) Error() string {
	return fmt.Sprintf("namespace %q not found in %s", e.Namespace, e.Where)
}

// Unwrap makes errors.Is(err, ErrModuleNotFound) hold.
func (e *NamespaceError) Unwrap() error {
	return ErrModuleNotFound
}

// Source loads the unit of code that defines a namespace.
type Source interface {
	Load(ctx context.Context, namespace string) (*Module, error)
}

// Module is a loaded unit of code.
type Module struct {
	Name  string           // Library name written to the report
	Types []TypeDescriptor // Every type defined in the unit, in loader order
}

// TypeDescriptor describes one type.
type TypeDescriptor struct {
	Name         string
	Namespace    string
	IsAbstract   bool
	IsPublic     bool
	BaseTypeName string
	Members      []MemberDescriptor // Declared public members only
}

// MemberDescriptor describes one declared member of a type.
type MemberDescriptor struct {
	Name          string
	Kind          MemberKind
	ValueTypeName string // Set only for fields and properties
	IsStatic      bool   // Belongs to the type rather than an instance
}

// ListTypes returns the types whose namespace equals namespace exactly.
// Child namespaces (namespace + "/..." or namespace + ".") are not included.
func (m *Module) ListTypes(namespace string) []TypeDescriptor {
	var out []TypeDescriptor
	for _, t := range m.Types {
		if t.Namespace == namespace {
			out = append(out, t)
		}
	}

	return out
}

// Namespaces returns the distinct namespaces of the module in first-seen order.
func (m *Module) Namespaces() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range m.Types {
		if !seen[t.Namespace] {
			seen[t.Namespace] = true
			out = append(out, t.Namespace)
		}
	}

	return out
}

// LookupField resolves the value type of the field called name.
// The second result is false on a lookup miss.
func (t *TypeDescriptor) LookupField(name string) (string, bool) {
	return t.lookup(MemberKindField, name)
}

// LookupProperty resolves the value type of the property called name.
func (t *TypeDescriptor) LookupProperty(name string) (string, bool) {
	return t.lookup(MemberKindProperty, name)
}

func (t *TypeDescriptor) lookup(kind MemberKind, name string) (string, bool) {
	for _, m := range t.Members {
		if m.Kind == kind && m.Name == name && m.ValueTypeName != "" {
			return m.ValueTypeName, true
		}
	}

	return "", false
}

// Modifiers returns the applicable keywords in report order.
func (t *TypeDescriptor) Modifiers() []string {
	var mods []string
	if t.IsPublic {
		mods = append(mods, "public")
	}
	if t.IsAbstract {
		mods = append(mods, "abstract")
	}

	return mods
}

// ResolveBaseType returns the base type name, or NoBaseType when it is empty.
// The second result is false when the sentinel was substituted.
func (t *TypeDescriptor) ResolveBaseType() (string, bool) {
	if t.BaseTypeName == "" {
		return NoBaseType, false
	}

	return t.BaseTypeName, true
}
