// Package primitives provides the foundational, zero-dependency value types
// of valuekit.
//
// This package uses ONLY the Go standard library. Encoders that need a
// third-party codec (YAML, TOML) rely on interfaces those codecs discover by
// method set, so no import is required here.
//
// Core invariants:
// - Value semantics: Tristate and CopyString copy by assignment, no sharing
// - Fixed capacity: a CopyString never grows or shrinks
// - Borrowed trees: NonBinaryTree never owns or mutates its children
// - Arena trees are acyclic by construction (children precede parents)
//
// See ../../DESIGN.md for the design rationale.
package primitives
