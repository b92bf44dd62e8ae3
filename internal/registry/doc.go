// Package registry generates Go source that compiles a module's metadata
// into a program as a *meta.Module value.
//
// The generated file imports metaexport/pkg/meta and declares one variable;
// pass it to meta.NewRegistry to report on it without loading anything at
// run time.
package registry
