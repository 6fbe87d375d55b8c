package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

func TestEmbeddedBundlesHaveSameKeys(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	en := b.Keys(locale.English)
	ar := b.Keys(locale.Arabic)
	require.NotEmpty(t, en)
	assert.Equal(t, en, ar)
}

func TestEmbeddedBundleValues(t *testing.T) {
	b := MustLoad()
	assert.Equal(t, "Projects", b.T(locale.English, "nav.projects"))
	assert.Equal(t, "المشاريع", b.T(locale.Arabic, "nav.projects"))
	assert.Equal(t, "Aden, Yemen", b.T(locale.English, "location"))
	assert.Equal(t, "English", b.T(locale.Arabic, "btn.lang"))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	b := MustLoad()
	assert.Equal(t, "nope.missing", b.T(locale.English, "nope.missing"))
	tr := b.Translator(locale.Arabic)
	assert.Equal(t, "الخبرات", tr("nav.experience"))
}

func TestLoadFSRejectsKeyMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("nav:\n  projects: \"Projects\"\n  skills: \"Skills\"\n")},
		"locales/ar.yaml": {Data: []byte("nav:\n  projects: \"المشاريع\"\n")},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `ar missing "nav.skills"`)
}

func TestLoadFSRejectsNonStringValues(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("count: 3\n")},
		"locales/ar.yaml": {Data: []byte("count: 3\n")},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
}

func TestLoadFSMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("a: \"b\"\n")},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locales/ar.yaml")
}
