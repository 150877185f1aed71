package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mapconv/internal/tilecode"
)

func writeMap(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.tmx")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRunPrintsEncodedLine(t *testing.T) {
	t.Setenv("MAPCONV_HONEYCOMB_API_KEY", "")
	t.Setenv("MAPCONV_TELEMETRY", "")

	path := writeMap(t, `<map width="2" height="1"><layer><data>0,31</data></layer></map>`)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, path, false))
	assert.Equal(t, "\"201V\"\n", out.String())
}

func TestRunFailsWithoutOutput(t *testing.T) {
	t.Setenv("MAPCONV_HONEYCOMB_API_KEY", "")
	t.Setenv("MAPCONV_TELEMETRY", "")

	path := writeMap(t, `<map width="3" height="1"><layer><data>1,x,3</data></layer></map>`)

	var out bytes.Buffer
	err := run(context.Background(), &out, path, false)
	assert.ErrorIs(t, err, tilecode.ErrBadToken)
	assert.Empty(t, out.String())

	err = run(context.Background(), &out, filepath.Join(t.TempDir(), "missing.tmx"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}
