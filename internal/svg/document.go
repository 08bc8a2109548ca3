// Package svg reads floor-plan SVG documents and extracts the path
// elements that look like building walls, based on stroke-width and
// first-segment-length heuristics. Path data is interpreted into plain
// coordinate lists; everything beyond absolute M/L/H/V/Z is out of scope.
package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// Element is a flattened view of one SVG element: the namespace-local tag
// name plus the three attributes the wall heuristics care about. Missing
// attributes stay empty.
type Element struct {
	Tag   string
	ID    string
	D     string
	Style string
}

// Document holds every element of a parsed SVG file in document order.
type Document struct {
	Elements []Element
}

// ReadDocumentStream decodes SVG markup from r. The decoder accepts any
// charset the document declares. Malformed XML fails the whole document;
// a document without a single element is also rejected.
func ReadDocumentStream(r io.Reader) (*Document, error) {
	doc := &Document{}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("svg: no elements found")
				}
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		seenTag = true
		// Name.Local already strips any namespace qualifier, so
		// svg:path and path compare equal downstream.
		el := Element{Tag: se.Name.Local}
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "id":
				el.ID = attr.Value
			case "d":
				el.D = attr.Value
			case "style":
				el.Style = attr.Value
			}
		}
		doc.Elements = append(doc.Elements, el)
	}
	return doc, nil
}

// ReadDocument reads and decodes the named SVG file.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDocumentStream(f)
}
