package snapshot

import (
	"encoding/binary"
	"io"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/graph"
)

// Reader deserializes a graph.Graph from a byte stream in the
// versioned snapshot format.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for snapshot decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Decode reads a full graph.Graph from the underlying stream. It
// rejects files whose magic does not match, and any version other
// than the one this codec writes. After reading all edges it rebuilds
// the adjacency index via graph.Graph.BuildAdjacency.
func (sr *Reader) Decode() (*graph.Graph, error) {
	nodeCount, edgeCount, minLat, maxLat, minLon, maxLon, err := sr.readHeader()
	if err != nil {
		return nil, err
	}

	strs, err := sr.readStringTable()
	if err != nil {
		return nil, err
	}

	g := graph.NewGraph()
	g.SetBounds(minLat, maxLat, minLon, maxLon)

	if err := sr.readNodes(g, nodeCount); err != nil {
		return nil, err
	}
	if err := sr.readEdges(g, edgeCount, strs); err != nil {
		return nil, err
	}

	g.BuildAdjacency()

	return g, nil
}

func (sr *Reader) readHeader() (nodeCount, edgeCount int64, minLat, maxLat, minLon, maxLon float64, err error) {
	var buf [headerSize]byte
	if _, err = io.ReadFull(sr.r, buf[:]); err != nil {
		err = ErrTruncated

		return
	}

	if string(buf[0:8]) != magic {
		err = ErrBadMagic

		return
	}

	version := int32(binary.LittleEndian.Uint32(buf[8:12]))
	if version != currentVersion {
		err = ErrUnsupportedVersion

		return
	}

	nodeCount = int64(binary.LittleEndian.Uint64(buf[12:20]))
	edgeCount = int64(binary.LittleEndian.Uint64(buf[20:28]))
	minLat = float64frombits(binary.LittleEndian.Uint64(buf[28:36]))
	maxLat = float64frombits(binary.LittleEndian.Uint64(buf[36:44]))
	minLon = float64frombits(binary.LittleEndian.Uint64(buf[44:52]))
	maxLon = float64frombits(binary.LittleEndian.Uint64(buf[52:60]))

	return
}

func (sr *Reader) readStringTable() ([]string, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(sr.r, countBuf[:]); err != nil {
		return nil, ErrTruncated
	}
	count := int32(binary.LittleEndian.Uint32(countBuf[:]))

	strs := make([]string, count)
	for i := int32(0); i < count; i++ {
		var header [8]byte
		if _, err := io.ReadFull(sr.r, header[:]); err != nil {
			return nil, ErrTruncated
		}
		id := int32(binary.LittleEndian.Uint32(header[0:4]))
		length := int32(binary.LittleEndian.Uint32(header[4:8]))

		strBuf := make([]byte, length)
		if _, err := io.ReadFull(sr.r, strBuf); err != nil {
			return nil, ErrTruncated
		}
		if id >= 0 && int(id) < len(strs) {
			strs[id] = string(strBuf)
		}
	}

	return strs, nil
}

func (sr *Reader) readNodes(g *graph.Graph, count int64) error {
	for i := int64(0); i < count; i++ {
		var buf [nodeRecordSize]byte
		if _, err := io.ReadFull(sr.r, buf[:]); err != nil {
			return ErrTruncated
		}
		id := int64(binary.LittleEndian.Uint64(buf[0:8]))
		lat := float64frombits(binary.LittleEndian.Uint64(buf[8:16]))
		lon := float64frombits(binary.LittleEndian.Uint64(buf[16:24]))

		if err := g.AddNode(id, geo.NewCoordinate(lat, lon)); err != nil {
			return err
		}
	}

	return nil
}

// resolveString returns the interned string for id, or "" for the
// absent-string sentinel or an out-of-range id.
func resolveString(strs []string, id int32) string {
	if id == absentStringID || id < 0 || int(id) >= len(strs) {
		return ""
	}

	return strs[id]
}

func (sr *Reader) readEdges(g *graph.Graph, count int64, strs []string) error {
	for i := int64(0); i < count; i++ {
		var buf [edgeFixedRecordSize]byte
		if _, err := io.ReadFull(sr.r, buf[:]); err != nil {
			return ErrTruncated
		}
		id := int64(binary.LittleEndian.Uint64(buf[0:8]))
		from := int64(binary.LittleEndian.Uint64(buf[8:16]))
		to := int64(binary.LittleEndian.Uint64(buf[16:24]))
		oneWay := buf[24] != 0
		meters := float64frombits(binary.LittleEndian.Uint64(buf[25:33]))
		tagCount := int32(binary.LittleEndian.Uint32(buf[40:44]))

		tags := make(map[string]string, tagCount)
		for t := int32(0); t < tagCount; t++ {
			var tagBuf [8]byte
			if _, err := io.ReadFull(sr.r, tagBuf[:]); err != nil {
				return ErrTruncated
			}
			keyID := int32(binary.LittleEndian.Uint32(tagBuf[0:4]))
			valID := int32(binary.LittleEndian.Uint32(tagBuf[4:8]))

			key := resolveString(strs, keyID)
			if key == "" {
				continue
			}
			tags[key] = resolveString(strs, valID)
		}

		dist, err := geo.NewDistance(meters)
		if err != nil {
			return err
		}
		if err := g.AddEdge(id, from, to, oneWay, dist, tags); err != nil {
			return err
		}
	}

	return nil
}
