// Package match provides a case-insensitive edit-distance score and "did you mean"
// ranking for names a user typed that did not resolve.
package match
