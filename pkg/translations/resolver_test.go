package translations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/lang"
	"github.com/dmitrymomot/translatable/pkg/translations"
)

func testResolver(t *testing.T) *translations.Resolver {
	t.Helper()
	coll, err := translations.Load([]translations.File{
		{ID: "common.toml", Data: []byte("[common.greeting]\nen = \"Hello {name}\"\nes = \"¡Hola {name}!\"\n")},
	}, translations.SeekAlphabetical, translations.OverlapOverwrite)
	require.NoError(t, err)
	return translations.NewResolver(coll)
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	resolver := testResolver(t)

	t.Run("returns the stored template verbatim", func(t *testing.T) {
		t.Parallel()
		got, err := resolver.Resolve("es", "common.greeting")
		require.NoError(t, err)
		require.Equal(t, "¡Hola {name}!", got)
	})

	t.Run("language lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		got, err := resolver.Resolve("ES", "common.greeting")
		require.NoError(t, err)
		require.Equal(t, "¡Hola {name}!", got)
	})

	t.Run("invalid language carries suggestions", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Resolve("sp", "common.greeting")
		require.Error(t, err)
		require.ErrorIs(t, err, translations.ErrInvalidLanguage)

		var lerr *translations.InvalidLanguageError
		require.ErrorAs(t, err, &lerr)
		require.Equal(t, "sp", lerr.Code)
		require.NotEmpty(t, lerr.Suggestions)
		for _, s := range lerr.Suggestions {
			require.True(t, lang.IsValid(s.Code), s.Code)
		}
	})

	t.Run("path not found", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Resolve("en", "common.missing")
		require.ErrorIs(t, err, translations.ErrPathNotFound)

		var perr *translations.PathNotFoundError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "common.missing", perr.Path)
	})

	t.Run("empty path is simply not found", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Resolve("en", "")
		require.ErrorIs(t, err, translations.ErrPathNotFound)
	})

	t.Run("partial path ending on a namespace is not found", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Resolve("en", "common")
		require.ErrorIs(t, err, translations.ErrPathNotFound)
	})

	t.Run("language not available at an existing path", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Resolve("de", "common.greeting")
		require.ErrorIs(t, err, translations.ErrLanguageNotAvailable)

		var aerr *translations.LanguageNotAvailableError
		require.ErrorAs(t, err, &aerr)
		require.Equal(t, "de", aerr.Language)
		require.Equal(t, "common.greeting", aerr.Path)
	})
}

func TestResolverLanguageShadowing(t *testing.T) {
	t.Parallel()

	// The first file that defines the path answers for every language, even
	// when a later file carries the missing language for the same path.
	coll, err := translations.Load([]translations.File{
		{ID: "a.toml", Data: []byte("[greeting]\nen = \"Hello\"\n")},
		{ID: "b.toml", Data: []byte("[greeting]\nde = \"Hallo\"\n")},
	}, translations.SeekAlphabetical, translations.OverlapIgnore)
	require.NoError(t, err)

	resolver := translations.NewResolver(coll)

	_, err = resolver.Resolve("de", "greeting")
	require.ErrorIs(t, err, translations.ErrLanguageNotAvailable)
}
