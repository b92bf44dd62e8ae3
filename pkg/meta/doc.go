// Package meta defines the read-only descriptors produced by every metadata
// source and consumed by the report writer.
//
// Key types:
//   - Module: a loaded unit of code and every type defined in it
//   - TypeDescriptor: name, modifiers, base type and declared members of a type
//   - MemberDescriptor: name, kind and (for fields and properties) value type
//   - Source: anything that can load a Module for a namespace
//
// The package is public so that generated registries can construct Modules
// from outside this repository.
package meta
