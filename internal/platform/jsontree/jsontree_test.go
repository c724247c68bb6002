package jsontree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Path(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"a":{"b":{"c":"deep"}},"n":null,"s":"x"}`))
	require.NoError(t, err)

	t.Run("present", func(t *testing.T) {
		assert.Equal(t, "deep", doc.Path("a", "b", "c").String())
	})

	t.Run("missing level degrades to empty", func(t *testing.T) {
		n := doc.Path("a", "missing", "c")
		assert.False(t, n.Exists())
		assert.Equal(t, "", n.String())
	})

	t.Run("null member", func(t *testing.T) {
		assert.False(t, doc.Get("n").Exists())
		assert.Equal(t, "", doc.Path("n", "anything").String())
	})

	t.Run("walking through a scalar", func(t *testing.T) {
		assert.Equal(t, "", doc.Path("s", "x").String())
	})
}

func TestNode_Arrays(t *testing.T) {
	doc, err := Decode(strings.NewReader(`[null, {"k":"v"}, ["a", 1, "b"]]`))
	require.NoError(t, err)

	assert.Equal(t, 3, doc.Len())
	assert.False(t, doc.Index(0).Exists())
	assert.Equal(t, "v", doc.Index(1).Get("k").String())
	assert.False(t, doc.Index(7).Exists())
	assert.False(t, doc.Index(-1).Exists())
	assert.Equal(t, []string{"a", "b"}, doc.Index(2).Strings())

	assert.Equal(t, 0, doc.Index(1).Len())
	assert.Equal(t, "", doc.Index(1).Index(0).String())
}

func TestNode_Each(t *testing.T) {
	doc := New([]any{"a", "b", "c"})

	var seen []string
	doc.Each(func(i int, el Node) bool {
		seen = append(seen, el.String())
		return i < 1
	})
	assert.Equal(t, []string{"a", "b"}, seen)

	called := false
	New(map[string]any{}).Each(func(int, Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"a":`))
	assert.Error(t, err)
}
