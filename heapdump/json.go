// ABOUTME: JSON dump format for arena snapshots
// ABOUTME: Reads and writes objects, handle counts, pins, and roots

package heapdump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prateek/arenagc/graph"
)

// JSONParser reads dumps written by WriteJSON
type JSONParser struct{}

type jsonDump struct {
	Objects []jsonObject  `json:"objects"`
	Roots   []graph.ObjID `json:"roots"`
}

type jsonObject struct {
	ID      graph.ObjID   `json:"id"`
	Type    string        `json:"type"`
	Size    uint64        `json:"size"`
	Ptrs    []graph.ObjID `json:"ptrs"`
	Handles int           `json:"handles,omitempty"`
	Pins    int           `json:"pins,omitempty"`
}

// CanParse reports whether the preview opens a JSON object with an
// "objects" member. The preview may be truncated, so it is not decoded.
func (p *JSONParser) CanParse(r io.Reader) bool {
	buf := make([]byte, previewSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false
	}
	preview := bytes.TrimLeft(buf[:n], " \t\r\n")
	return len(preview) > 0 && preview[0] == '{' && bytes.Contains(preview, []byte(`"objects"`))
}

// Parse reads the JSON dump and builds a graph
func (p *JSONParser) Parse(r io.Reader) (graph.Graph, error) {
	var dump jsonDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("heapdump: decode JSON: %w", err)
	}

	g := graph.NewMemGraph()
	for i, obj := range dump.Objects {
		if obj.ID == 0 {
			return nil, fmt.Errorf("heapdump: object at index %d missing ID", i)
		}
		if g.GetObject(obj.ID) != nil {
			return nil, fmt.Errorf("heapdump: duplicate object ID %d", obj.ID)
		}
		ptrs := obj.Ptrs
		if ptrs == nil {
			ptrs = []graph.ObjID{}
		}
		g.AddObject(&graph.Object{
			ID:      obj.ID,
			Type:    obj.Type,
			Size:    obj.Size,
			Ptrs:    ptrs,
			Handles: obj.Handles,
			Pins:    obj.Pins,
		})
	}

	roots := graph.Roots{IDs: dump.Roots}
	if roots.IDs == nil {
		roots.IDs = []graph.ObjID{}
	}
	g.SetRoots(roots)

	return g, nil
}

// WriteJSON writes g in the format JSONParser reads, objects in ID order
func WriteJSON(w io.Writer, g graph.Graph) error {
	dump := jsonDump{
		Objects: make([]jsonObject, 0, g.NumObjects()),
		Roots:   g.GetRoots().IDs,
	}
	if dump.Roots == nil {
		dump.Roots = []graph.ObjID{}
	}
	g.ForEachObject(func(obj *graph.Object) {
		ptrs := obj.Ptrs
		if ptrs == nil {
			ptrs = []graph.ObjID{}
		}
		dump.Objects = append(dump.Objects, jsonObject{
			ID:      obj.ID,
			Type:    obj.Type,
			Size:    obj.Size,
			Ptrs:    ptrs,
			Handles: obj.Handles,
			Pins:    obj.Pins,
		})
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("heapdump: encode JSON: %w", err)
	}
	return nil
}

func init() {
	Register(&JSONParser{})
}
