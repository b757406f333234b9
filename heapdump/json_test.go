// ABOUTME: Tests for the JSON dump reader and writer
// ABOUTME: Validates parsing, detection, error handling, and round trips

package heapdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/arenagc/gc"
	"github.com/prateek/arenagc/graph"
)

func TestJSONParse(t *testing.T) {
	data := `{
		"objects": [
			{"id": 1, "type": "*main.node", "size": 100, "ptrs": [2], "handles": 1},
			{"id": 2, "type": "*main.node", "size": 50, "ptrs": [], "handles": 1, "pins": 2}
		],
		"roots": [1]
	}`

	g, err := (&JSONParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumObjects())

	obj1 := g.GetObject(1)
	require.NotNil(t, obj1)
	assert.Equal(t, "*main.node", obj1.Type)
	assert.Equal(t, uint64(100), obj1.Size)
	assert.Equal(t, []graph.ObjID{2}, obj1.Ptrs)
	assert.Equal(t, 1, obj1.Handles)
	assert.Equal(t, 2, g.GetObject(2).Pins)
	assert.Equal(t, []graph.ObjID{1}, g.GetRoots().IDs)
}

func TestJSONCanParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "empty dump", content: `{"objects": [], "roots": []}`, want: true},
		{name: "leading whitespace", content: "\n  {\"objects\": [{\"id\": 1}]}", want: true},
		{name: "truncated preview", content: `{"objects": [{"id": 1, "ty`, want: true},
		{name: "not JSON", content: `not json at all`, want: false},
		{name: "no objects key", content: `{"data": []}`, want: false},
		{name: "array", content: `[{"objects": []}]`, want: false},
		{name: "empty", content: ``, want: false},
	}

	parser := &JSONParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.CanParse(strings.NewReader(tt.content)))
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid syntax", content: `{"objects": [}`},
		{name: "missing id", content: `{"objects": [{"type": "test"}]}`},
		{name: "duplicate id", content: `{"objects": [{"id": 3}, {"id": 3}]}`},
		{name: "objects not an array", content: `{"objects": "nope", "roots": []}`},
	}

	parser := &JSONParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestJSONWithCycles(t *testing.T) {
	data := `{
		"objects": [
			{"id": 1, "type": "root1", "size": 10, "ptrs": [2, 3]},
			{"id": 2, "type": "node", "size": 20, "ptrs": [3]},
			{"id": 3, "type": "node", "size": 30, "ptrs": [1]},
			{"id": 4, "type": "root2", "size": 40, "ptrs": [2]}
		],
		"roots": [1, 4]
	}`

	g, err := (&JSONParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumObjects())
	assert.Len(t, g.GetRoots().IDs, 2)
	assert.Equal(t, 4, graph.Reachable(g).Cardinality())
}

func TestWriteJSONRoundTrip(t *testing.T) {
	a := gc.New()
	x := gc.Allocate(a, gc.NewLeaf("payload"))
	list := gc.Allocate(a, gc.Slice[*gc.Handle[*gc.Leaf[string]]]{x.Clone(), x.Clone()})
	x.Release()
	orphan := gc.Allocate(a, gc.NewLeaf(3.5))
	orphan.Release()

	snap := a.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, snap))

	g, err := Open(&buf)
	require.NoError(t, err)
	require.Equal(t, snap.NumObjects(), g.NumObjects())

	snap.ForEachObject(func(want *graph.Object) {
		got := g.GetObject(want.ID)
		require.NotNil(t, got, "object %d", want.ID)
		assert.Equal(t, want, got)
	})
	assert.Equal(t, []graph.ObjID{list.Address()}, g.GetRoots().IDs)
	assert.Equal(t, []graph.ObjID{orphan.Address()}, graph.Unreachable(g))
}

func TestWriteJSONEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, graph.NewMemGraph()))
	assert.JSONEq(t, `{"objects": [], "roots": []}`, buf.String())
}
