// Package types defines the typed value model, the ordered FrontMatter
// mapping, and the standard error types for the satchel tag engine.
// Implements: prd001-tag-engine-core (Value, FrontMatter, RepoInfo, errors);
//
//	docs/ARCHITECTURE § Data Model.
package types
