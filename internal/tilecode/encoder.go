package tilecode

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mapconv/internal/document"
	"github.com/samdwyer/mapconv/internal/telemetry"
	"github.com/samdwyer/mapconv/internal/world"
)

const (
	layerElement = "layer"
	dataElement  = "data"
)

// Extract reads the map size from the root element and the tiles of the
// first data block inside the first layer. Later layers and data blocks are
// never looked at. A document without either yields a map with no tiles.
func Extract(root *document.Element) (*world.Map, error) {
	width, err := root.IntAttr("width")
	if err != nil {
		return nil, err
	}
	height, err := root.IntAttr("height")
	if err != nil {
		return nil, err
	}

	m := &world.Map{Width: width, Height: height}

	data := root.Find(layerElement).Find(dataElement)
	if data == nil {
		return m, nil
	}

	indices, err := ParseLayer(data.Text)
	if err != nil {
		return nil, fmt.Errorf("layer data: %w", err)
	}

	m.Tiles = make([]world.Tile, len(indices))
	for i, n := range indices {
		m.Tiles[i] = world.Tile(n)
	}
	m.HasLayer = true
	return m, nil
}

// Encode renders m as a quoted digit string: width, height, then the tiles.
func Encode(m *world.Map) string {
	var b strings.Builder
	b.Grow(len(m.Tiles) + 4)

	b.WriteByte('"')
	b.WriteByte(Digit(m.Width))
	b.WriteByte(Digit(m.Height))
	for _, t := range m.Tiles {
		b.WriteByte(Digit(int(t)))
	}
	b.WriteByte('"')

	return b.String()
}

// EncodeReader parses a document from r and returns its encoding along with
// the extracted map.
func EncodeReader(ctx context.Context, r io.Reader) (string, *world.Map, error) {
	tracer := telemetry.Tracer("tilecode")
	_, span := tracer.Start(ctx, "tilecode.encode")
	defer span.End()

	root, err := document.Parse(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return "", nil, fmt.Errorf("failed to parse map: %w", err)
	}

	return encodeRoot(span, root)
}

// EncodeFile is EncodeReader for a document on disk.
func EncodeFile(ctx context.Context, path string) (string, *world.Map, error) {
	tracer := telemetry.Tracer("tilecode")
	_, span := tracer.Start(ctx, "tilecode.encode_file")
	defer span.End()

	span.SetAttributes(attribute.String("map.path", path))

	root, err := document.ParseFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return "", nil, err
	}

	return encodeRoot(span, root)
}

func encodeRoot(span trace.Span, root *document.Element) (string, *world.Map, error) {
	m, err := Extract(root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extract failed")
		return "", nil, err
	}

	encoded := Encode(m)

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Bool("map.has_layer", m.HasLayer),
		attribute.Int("map.tiles", len(m.Tiles)),
		attribute.Int("map.clamped_tiles", m.OutOfRange()),
		attribute.Bool("map.clamped_size", Clamped(m.Width) || Clamped(m.Height)),
	)

	return encoded, m, nil
}
