package analyze

import (
	"go/types"
)

// ShortName returns a type's name without package qualifiers.
// Examples:
//   - "string" for string
//   - "Time" for time.Time
//   - "[]*Pet" for []*animallibrary.Pet
//   - "map[string]Owner" for map[string]animallibrary.Owner
func ShortName(t types.Type) string {
	if t == nil {
		return ""
	}

	return types.TypeString(t, func(*types.Package) string { return "" })
}

// deref strips one level of pointer indirection.
func deref(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// BaseTypeName names the closest Go analogue of a type's ancestor.
//   - struct: the first embedded field's type, else "struct"
//   - interface: the first embedded type, else "interface"
//   - anything else: the short form of the underlying type
func BaseTypeName(named *types.Named) string {
	switch ut := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < ut.NumFields(); i++ {
			if f := ut.Field(i); f.Embedded() {
				return ShortName(deref(f.Type()))
			}
		}
		return "struct"

	case *types.Interface:
		if ut.NumEmbeddeds() > 0 {
			return ShortName(ut.EmbeddedType(0))
		}
		return "interface"

	default:
		return ShortName(ut)
	}
}

// namedOf returns the type name behind t or *t, or nil.
func namedOf(t types.Type) *types.TypeName {
	if named, ok := deref(t).(*types.Named); ok {
		return named.Obj()
	}

	return nil
}
