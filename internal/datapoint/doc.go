// Package datapoint owns the versioned datapoint wire contract.
//
// Ownership boundary:
// - variant catalog and tag assignments
// - header layout selection per framing version
// - frame encode/decode primitives
package datapoint
