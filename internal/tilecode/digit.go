// Package tilecode encodes a map document as a quoted string of base-32 digits:
// width, height, then one digit per tile of the first layer.
package tilecode

// Alphabet is the digit set, in value order. It matches parseInt(c, 32).
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

const maxDigit = len(Alphabet) - 1

// Digit returns the base-32 digit for v. Values below 0 become '0' and values
// above 31 become 'V'; out-of-range input is never an error.
func Digit(v int) byte {
	return Alphabet[max(0, min(v, maxDigit))]
}

// Clamped reports whether Digit(v) loses information.
func Clamped(v int) bool {
	return v < 0 || v > maxDigit
}
