package assets

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Document is the minimal vector content of one frame asset: its declared
// viewport and the path data of every <path> element, nested groups
// included, in document order.
type Document struct {
	ViewBox [4]float64 // min-x, min-y, width, height
	Paths   []string
}

// ReadDocument loads and scans a frame asset file.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument walks the XML token stream collecting the root viewBox
// and all path "d" attributes. Anything else in the document (styles,
// defs, metadata from the drawing tool) is ignored.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{ViewBox: [4]float64{0, 0, 100, 100}}
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "svg":
			for _, attr := range se.Attr {
				if attr.Name.Local == "viewBox" {
					if vb, ok := parseViewBox(attr.Value); ok {
						doc.ViewBox = vb
					}
				}
			}
		case "path":
			for _, attr := range se.Attr {
				if attr.Name.Local == "d" && attr.Value != "" {
					doc.Paths = append(doc.Paths, attr.Value)
				}
			}
		}
	}

	return doc, nil
}

func parseViewBox(s string) ([4]float64, bool) {
	var vb [4]float64
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) < 4 {
		return vb, false
	}
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return vb, false
		}
		vb[i] = v
	}
	return vb, true
}
