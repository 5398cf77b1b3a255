// Package stream layers multi-frame streams over the datapoint codec.
//
// Ownership boundary:
// - buffered frame appends with offset accounting
// - sequential frame scanning and the unknown-tag skip policy
package stream
