package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	cases := map[string]Locale{
		"/ar":          Arabic,
		"/ar/":         Arabic,
		"/ar/projects": Arabic,
		"/en":          English,
		"/en/projects": English,
		"/":            English,
		"":             English,
		"/arabic":      English,
		"/fr/about":    English,
		"ar":           English,
	}
	for path, want := range cases {
		assert.Equal(t, want, FromPath(path), "path %q", path)
	}
}

func TestTogglePathExamples(t *testing.T) {
	assert.Equal(t, "/ar/projects", TogglePath("/en/projects"))
	assert.Equal(t, "/en/projects", TogglePath("/ar/projects"))
	assert.Equal(t, "/ar/", TogglePath("/"))
	assert.Equal(t, "/ar", TogglePath("/en"))
	assert.Equal(t, "/en", TogglePath("/ar"))
	assert.Equal(t, "/ar/projects", TogglePath("/projects"))
	assert.Equal(t, "/ar/arabic", TogglePath("/arabic"))
	assert.Equal(t, "/ar/", TogglePath(""))
}

func TestTogglePathTwiceIsIdentityForPrefixedPaths(t *testing.T) {
	paths := []string{
		"/ar", "/en", "/ar/", "/en/", "/ar/projects", "/en/projects",
		"/en/a/b/c?x=1", "/ar/#skills", "/en//double",
	}
	for _, p := range paths {
		assert.Equal(t, p, TogglePath(TogglePath(p)), "path %q", p)
	}
}

func TestTogglePathUnprefixed(t *testing.T) {
	for _, p := range []string{"/", "/projects", "/a/b", "/arabic"} {
		once := TogglePath(p)
		assert.Equal(t, "/ar"+p, once)
		require.True(t, HasPrefix(once))

		back := TogglePath(once)
		assert.Equal(t, English, FromPath(back))
		assert.Equal(t, "/en"+p, back)
	}
}

func TestLocaleAttributes(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", English.Dir())
	assert.Equal(t, "ar_AR", Arabic.OGLocale())
	assert.Equal(t, "en_US", English.OGLocale())
	assert.Equal(t, English, Arabic.Other())
	assert.Equal(t, "/ar", Arabic.Prefix())
	assert.Equal(t, "ar", Arabic.Tag().String())
}

func TestParse(t *testing.T) {
	l, ok := Parse(" AR ")
	require.True(t, ok)
	assert.Equal(t, Arabic, l)

	_, ok = Parse("fr")
	assert.False(t, ok)
}

func TestStripPrefixAndLocalize(t *testing.T) {
	assert.Equal(t, "/", StripPrefix("/ar"))
	assert.Equal(t, "/projects", StripPrefix("/en/projects"))
	assert.Equal(t, "/projects", StripPrefix("/projects"))
	assert.Equal(t, "/ar", Localize(Arabic, "/"))
	assert.Equal(t, "/en/sitemap", Localize(English, "sitemap"))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, Arabic, Match("ar-YE,ar;q=0.9,en;q=0.5"))
	assert.Equal(t, English, Match("en-US,en;q=0.9"))
	assert.Equal(t, English, Match(""))
	assert.Equal(t, English, Match("not a header;;;"))
}
