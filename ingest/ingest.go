// Package ingest defines the graph data source boundary: an Ingester
// loads a graph.Graph from some external representation. OSM XML
// ingestion itself is out of scope; LoadXML exists so the surface is
// in place for a future implementation without committing to one now.
package ingest

import (
	"errors"
	"io"

	"github.com/oroutengine/ogr/graph"
)

// ErrUnsupportedFormat is returned by ingesters that recognize a
// request but do not implement it yet.
var ErrUnsupportedFormat = errors.New("ingest: unsupported source format")

// Ingester loads a graph.Graph from r.
type Ingester interface {
	Load(r io.Reader) (*graph.Graph, error)
}

// xmlIngester is the Ingester LoadXML returns; Load always fails with
// ErrUnsupportedFormat since no OSM XML parser is implemented here.
type xmlIngester struct{}

// LoadXML returns an Ingester for OSM XML data. Its Load method always
// returns ErrUnsupportedFormat: the binary snapshot format in the
// snapshot package is this module's supported interchange format.
func LoadXML() Ingester {
	return xmlIngester{}
}

func (xmlIngester) Load(r io.Reader) (*graph.Graph, error) {
	return nil, ErrUnsupportedFormat
}
