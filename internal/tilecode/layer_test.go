package tilecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayer(t *testing.T) {
	indices, err := ParseLayer("1,2,3,40")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 40}, indices)
}

func TestParseLayerIgnoresLineBreaks(t *testing.T) {
	want, err := EncodeLayer("1,2,3,4")
	require.NoError(t, err)

	for _, raw := range []string{"1,2,\n3,4", "1,2,\r\n3,4", "\n1,2,3,4\n", "1,\r2,3\n,4"} {
		got, err := EncodeLayer(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}
}

func TestParseLayerTrimsSpaces(t *testing.T) {
	indices, err := ParseLayer("  1, 2 ,\t3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, indices)
}

func TestEncodeLayerClamps(t *testing.T) {
	got, err := EncodeLayer("-5,0,31,32,99")
	require.NoError(t, err)
	assert.Equal(t, "00VVV", got)

	// Integers wider than an int are still integers
	got, err = EncodeLayer("0,99999999999999999999,-99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, "0V0", got)
}

func TestParseLayerErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad token", "1,x,3"},
		{"empty block", ""},
		{"only line breaks", "\n\r\n"},
		{"trailing comma", "1,2,"},
		{"empty token", "1,,2"},
		{"float", "1,2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayer(tt.raw)
			assert.ErrorIs(t, err, ErrBadToken)

			_, err = EncodeLayer(tt.raw)
			assert.ErrorIs(t, err, ErrBadToken)
		})
	}
}
