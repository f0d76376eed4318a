package translations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/translations"
)

func TestNewNode(t *testing.T) {
	t.Parallel()

	t.Run("builds nested namespaces with leaves", func(t *testing.T) {
		t.Parallel()
		node, err := translations.NewNode(map[string]any{
			"common": map[string]any{
				"greeting": map[string]any{
					"en": "Hello {name}",
					"es": "¡Hola {name}!",
				},
			},
		})
		require.NoError(t, err)
		require.False(t, node.IsLeaf())

		obj, ok := node.FindPath([]string{"common", "greeting"})
		require.True(t, ok)

		got, ok := obj.Get("en")
		require.True(t, ok)
		require.Equal(t, "Hello {name}", got)
	})

	t.Run("rejects mixed siblings", func(t *testing.T) {
		t.Parallel()
		_, err := translations.NewNode(map[string]any{
			"common": map[string]any{
				"nested": map[string]any{"en": "Hi"},
				"en":     "Hello",
			},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, translations.ErrMixedNodeKinds)

		var serr *translations.StructuralError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "common", serr.Path)
	})

	t.Run("rejects non-string non-table values", func(t *testing.T) {
		t.Parallel()
		_, err := translations.NewNode(map[string]any{
			"common": map[string]any{"en": 42},
		})
		require.ErrorIs(t, err, translations.ErrUnsupportedValue)

		var serr *translations.StructuralError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "common.en", serr.Path)
	})

	t.Run("rejects invalid leaf language with path", func(t *testing.T) {
		t.Parallel()
		_, err := translations.NewNode(map[string]any{
			"common": map[string]any{"xx": "Hello"},
		})
		require.ErrorIs(t, err, translations.ErrInvalidLanguageCode)

		var serr *translations.StructuralError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "common", serr.Path)
	})

	t.Run("empty table is an empty namespace", func(t *testing.T) {
		t.Parallel()
		node, err := translations.NewNode(map[string]any{})
		require.NoError(t, err)
		require.False(t, node.IsLeaf())
		require.Empty(t, node.Children())
	})
}

func TestNodeFindPath(t *testing.T) {
	t.Parallel()

	node, err := translations.NewNode(map[string]any{
		"common": map[string]any{
			"greeting": map[string]any{"en": "Hello"},
		},
	})
	require.NoError(t, err)

	t.Run("absent segment", func(t *testing.T) {
		t.Parallel()
		_, ok := node.FindPath([]string{"common", "farewell"})
		require.False(t, ok)
	})

	t.Run("walk ends on a namespace", func(t *testing.T) {
		t.Parallel()
		_, ok := node.FindPath([]string{"common"})
		require.False(t, ok)
	})

	t.Run("segments remain past a leaf", func(t *testing.T) {
		t.Parallel()
		_, ok := node.FindPath([]string{"common", "greeting", "extra"})
		require.False(t, ok)
	})

	t.Run("empty segments on a namespace root", func(t *testing.T) {
		t.Parallel()
		_, ok := node.FindPath(nil)
		require.False(t, ok)
	})

	t.Run("child accessors", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"common"}, node.Children())

		child, ok := node.Child("common")
		require.True(t, ok)
		require.Equal(t, []string{"greeting"}, child.Children())

		leaf, ok := child.Child("greeting")
		require.True(t, ok)
		require.True(t, leaf.IsLeaf())
		require.NotNil(t, leaf.Object())
	})
}
