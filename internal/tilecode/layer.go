package tilecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadToken is returned when a layer data token is not an integer.
var ErrBadToken = errors.New("invalid tile index")

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// ParseLayer splits the text of a data block into tile indices. Line breaks
// are removed first so wrapped lists parse the same as single-line ones.
// An empty block is an error, as is any token that is not an integer.
// Integers too large for an int saturate instead of failing.
func ParseLayer(raw string) ([]int, error) {
	tokens := strings.Split(lineBreaks.Replace(raw), ",")

	indices := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w %q at position %d", ErrBadToken, tok, i)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

// EncodeLayer parses raw and returns one digit per tile index.
func EncodeLayer(raw string) (string, error) {
	indices, err := ParseLayer(raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(indices))
	for _, n := range indices {
		b.WriteByte(Digit(n))
	}
	return b.String(), nil
}
