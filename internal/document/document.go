// Package document builds a small element tree from an XML map file.
package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when the input holds no top-level element.
var ErrNoRoot = errors.New("document has no root element")

// Element is one node of the parsed tree.
type Element struct {
	Name     string
	Attrs    map[string]string
	Text     string // character data before the first child element
	Children []*Element
}

// ParseFile opens path and parses it as a document.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %w", path, err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return root, nil
}

// Parse reads a whole document from r and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	// Tiled and hand-edited maps sometimes declare a legacy encoding
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := newElement(t)
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("line %d: junk after document element <%s>", lineOf(dec), t.Name.Local)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("line %d: text outside document element", lineOf(dec))
				}
				continue
			}
			// Only the leading text counts; anything after a child is tail text.
			if cur := stack[len(stack)-1]; len(cur.Children) == 0 {
				cur.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func newElement(t xml.StartElement) *Element {
	el := &Element{
		Name:  t.Name.Local,
		Attrs: make(map[string]string, len(t.Attr)),
	}
	for _, a := range t.Attr {
		if a.Name.Space != "" {
			continue
		}
		el.Attrs[a.Name.Local] = a.Value
	}
	return el
}

func lineOf(dec *xml.Decoder) int {
	line, _ := dec.InputPos()
	return line
}

// Find returns the first element named name in document order, starting with
// e itself, or nil when there is none. The walk stops at the first match.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	if e.Name == name {
		return e
	}
	for _, child := range e.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of an unqualified attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// IntAttr returns an attribute coerced to an integer. Surrounding whitespace
// is ignored, and values too large for an int saturate at its bounds.
func (e *Element) IntAttr(name string) (int, error) {
	v, ok := e.Attr(name)
	if !ok {
		return 0, fmt.Errorf("<%s> has no %q attribute", e.Name, name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("<%s> attribute %q: %w", e.Name, name, err)
	}
	return n, nil
}
