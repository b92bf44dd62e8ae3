// Package analyze loads Go packages and describes their declared types.
//
// It uses golang.org/x/tools/go/packages with go/types to build the
// metadata model shared by every source (see metaexport/pkg/meta).
//
// Mapping from Go to the report model:
//   - namespace: package import path
//   - public: exported identifier
//   - abstract: interface type
//   - base type: first embedded type, or the underlying type's short form
//   - members: declared fields, package-level values of the type,
//     declared methods and constructor functions
package analyze
