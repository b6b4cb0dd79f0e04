package ingest_test

import (
	"strings"
	"testing"

	"github.com/oroutengine/ogr/ingest"
	"github.com/stretchr/testify/require"
)

func TestLoadXML_AlwaysUnsupported(t *testing.T) {
	_, err := ingest.LoadXML().Load(strings.NewReader("<osm></osm>"))
	require.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
}
