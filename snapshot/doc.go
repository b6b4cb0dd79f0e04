// Package snapshot implements the binary graph snapshot codec: a
// versioned, little-endian byte format that reconstructs a graph.Graph
// in the time it takes to read a file, rather than re-parsing source
// map data.
//
// The format interns tag strings into a per-file table so that
// repeated highway-class and street-name strings are written once
// regardless of how many edges reference them.
package snapshot
