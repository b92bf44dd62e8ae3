// Package diagnostic provides structured, non-fatal findings collected while
// a report is generated.
//
// Key capabilities:
//   - Member resolution misses (detail element omitted)
//   - Missing base type substitutions
//   - "Did you mean" suggestions for unknown namespaces
package diagnostic
