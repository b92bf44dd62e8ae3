package manifest

import (
	"errors"
	"fmt"

	"metaexport/pkg/meta"
)

// File represents the root of a YAML manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Name is the library name written to reports.
	Name string `yaml:"name"`

	// Types lists every type defined in the library, in any namespace.
	Types []TypeEntry `yaml:"types"`
}

// TypeEntry describes one type.
type TypeEntry struct {
	Name      string        `yaml:"name"`
	Namespace string        `yaml:"namespace"`
	Public    bool          `yaml:"public,omitempty"`
	Abstract  bool          `yaml:"abstract,omitempty"`
	Base      string        `yaml:"base,omitempty"`
	Members   []MemberEntry `yaml:"members,omitempty"`
}

// MemberEntry describes one member as the library's own tooling saw it.
type MemberEntry struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Type is the value type of a field or property.
	// When empty the member is kept but its type is a lookup miss.
	Type string `yaml:"type,omitempty"`

	// Public defaults to true.
	Public *bool `yaml:"public,omitempty"`
	Static bool  `yaml:"static,omitempty"`

	// DeclaredBy names the declaring type when the member is inherited.
	DeclaredBy string `yaml:"declaredBy,omitempty"`
}

// IsPublic reports the member visibility, defaulting to public.
func (m MemberEntry) IsPublic() bool {
	return m.Public == nil || *m.Public
}

// IsDeclaredOn reports whether the member is declared by the type called owner.
func (m MemberEntry) IsDeclaredOn(owner string) bool {
	return m.DeclaredBy == "" || m.DeclaredBy == owner
}

// Validate checks required names and member kinds.
func (f *File) Validate() error {
	var errs []error
	for i, t := range f.Types {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("types[%d]: name is required", i))
		}

		for j, m := range t.Members {
			if m.Name == "" {
				errs = append(errs, fmt.Errorf("types[%d].members[%d]: name is required", i, j))
			}
			if _, err := meta.ParseMemberKind(m.Kind); err != nil {
				errs = append(errs, fmt.Errorf("types[%d].members[%d]: %w", i, j, err))
			}
		}
	}

	return errors.Join(errs...)
}

// ToModule converts the manifest into the report model, keeping only public
// members declared directly on each type.
func (f *File) ToModule() (*meta.Module, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	module := &meta.Module{Name: f.Name}
	for _, t := range f.Types {
		td := meta.TypeDescriptor{
			Name:         t.Name,
			Namespace:    t.Namespace,
			IsAbstract:   t.Abstract,
			IsPublic:     t.Public,
			BaseTypeName: t.Base,
		}

		for _, m := range t.Members {
			if !m.IsPublic() || !m.IsDeclaredOn(t.Name) {
				continue
			}

			kind, _ := meta.ParseMemberKind(m.Kind)
			md := meta.MemberDescriptor{Name: m.Name, Kind: kind, IsStatic: m.Static}
			if kind.HasValueType() {
				md.ValueTypeName = m.Type
			}
			td.Members = append(td.Members, md)
		}

		module.Types = append(module.Types, td)
	}

	return module, nil
}

// FromModule builds a manifest from a loaded module.
func FromModule(m *meta.Module) *File {
	f := &File{Version: "1", Name: m.Name}
	for _, td := range m.Types {
		entry := TypeEntry{
			Name:      td.Name,
			Namespace: td.Namespace,
			Public:    td.IsPublic,
			Abstract:  td.IsAbstract,
			Base:      td.BaseTypeName,
		}

		for _, md := range td.Members {
			entry.Members = append(entry.Members, MemberEntry{
				Name: md.Name,
				Kind: md.Kind.String(),
				Type:   md.ValueTypeName,
				Static: md.IsStatic,
			})
		}

		f.Types = append(f.Types, entry)
	}

	return f
}
