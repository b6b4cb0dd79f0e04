package snapshot

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/oroutengine/ogr/graph"
)

// Writer serializes a graph.Graph to a byte stream in the versioned
// snapshot format.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for snapshot encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Encode writes g to the underlying stream. Nodes and edges are
// written in ascending id order so that encoding the same graph twice
// yields byte-identical output.
func (sw *Writer) Encode(g *graph.Graph) error {
	nodes := g.Nodes()
	edges := g.Edges()

	strs := make(map[string]struct{})
	for _, e := range edges {
		for k, v := range e.Tags {
			strs[k] = struct{}{}
			strs[v] = struct{}{}
		}
	}
	table := newStringTable(strs)

	if err := sw.writeHeader(g, len(nodes), len(edges)); err != nil {
		return err
	}
	if err := sw.writeStringTable(table); err != nil {
		return err
	}
	if err := sw.writeNodes(nodes); err != nil {
		return err
	}

	return sw.writeEdges(edges, table)
}

func (sw *Writer) writeHeader(g *graph.Graph, nodeCount, edgeCount int) error {
	var buf [headerSize]byte
	copy(buf[0:8], magic)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(currentVersion))
	binary.LittleEndian.PutUint64(buf[12:20], uint64(nodeCount))
	binary.LittleEndian.PutUint64(buf[20:28], uint64(edgeCount))

	minLat, maxLat, minLon, maxLon, _ := g.Bounds()
	putFloat64(buf[28:36], minLat)
	putFloat64(buf[36:44], maxLat)
	putFloat64(buf[44:52], minLon)
	putFloat64(buf[52:60], maxLon)
	// buf[60:128] remains zero padding (headerPaddingSize == 68 bytes).

	_, err := sw.w.Write(buf[:])

	return err
}

func (sw *Writer) writeStringTable(table *stringTable) error {
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(table.ordered)))
	if _, err := sw.w.Write(countBuf[:]); err != nil {
		return err
	}

	for i, s := range table.ordered {
		var header [8]byte
		binary.LittleEndian.PutUint32(header[0:4], uint32(i))
		binary.LittleEndian.PutUint32(header[4:8], uint32(len(s)))
		if _, err := sw.w.Write(header[:]); err != nil {
			return err
		}
		if _, err := io.WriteString(sw.w, s); err != nil {
			return err
		}
	}

	return nil
}

func (sw *Writer) writeNodes(nodes []*graph.Node) error {
	for _, n := range nodes {
		var buf [nodeRecordSize]byte
		binary.LittleEndian.PutUint64(buf[0:8], uint64(n.ID))
		putFloat64(buf[8:16], n.Coord.Lat)
		putFloat64(buf[16:24], n.Coord.Lon)
		if _, err := sw.w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func (sw *Writer) writeEdges(edges []*graph.Edge, table *stringTable) error {
	for _, e := range edges {
		var buf [edgeFixedRecordSize]byte
		binary.LittleEndian.PutUint64(buf[0:8], uint64(e.ID))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(e.From))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(e.To))
		if e.OneWay {
			buf[24] = 1
		}
		putFloat64(buf[25:33], e.Dist.Meters())
		// buf[33:40] is the 7-byte alignment pad.
		binary.LittleEndian.PutUint32(buf[40:44], uint32(len(e.Tags)))
		if _, err := sw.w.Write(buf[:]); err != nil {
			return err
		}

		if err := sw.writeTags(e.Tags, table); err != nil {
			return err
		}
	}

	return nil
}

// writeTags writes key/value string-id pairs in sorted key order so
// that a fixed Tags map yields deterministic output.
func (sw *Writer) writeTags(tags map[string]string, table *stringTable) error {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var buf [8]byte
		binary.LittleEndian.PutUint32(buf[0:4], uint32(table.id(k)))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(table.id(tags[k])))
		if _, err := sw.w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func putFloat64(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, float64bits(v))
}
