// Package kernel provides shared domain primitives for the dispatch engine:
// identifiers and geographic coordinates. All types here are immutable value
// objects created through constructors that enforce their invariants.
package kernel
