package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

const base = "https://mk-portfolio-eight-tau.vercel.app"

func TestForArabic(t *testing.T) {
	m := For(locale.Arabic, base)
	assert.Equal(t, "ar", m.Lang)
	assert.Equal(t, "rtl", m.Dir)
	assert.Equal(t, "/ar", m.Canonical)
	assert.Equal(t, "ar_AR", m.OpenGraph.Locale)
	assert.Equal(t, []string{"en_US"}, m.OpenGraph.AlternateLocale)
	assert.Equal(t, "مهند خالد حبيشان", m.OpenGraph.SiteName)
	assert.Contains(t, m.KeywordList(), "عدن, اليمن")
}

func TestForEnglish(t *testing.T) {
	m := For(locale.English, base)
	assert.Equal(t, "ltr", m.Dir)
	assert.Equal(t, "en_US", m.OpenGraph.Locale)
	assert.Equal(t, "/en", m.OpenGraph.URL)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	assert.Equal(t, ManifestPath, m.Manifest)
	require.Len(t, m.OpenGraph.Images, 1)
	assert.Equal(t, 1200, m.OpenGraph.Images[0].Width)
	assert.Equal(t, 630, m.OpenGraph.Images[0].Height)
	assert.Equal(t, base+"/en", m.Absolute(m.Canonical))
}

func TestAlternatesCoverBothLocales(t *testing.T) {
	m := For(locale.English, base)
	got := map[string]string{}
	for _, a := range m.Alternates {
		got[a.HrefLang] = a.Href
	}
	assert.Equal(t, "/ar", got["ar"])
	assert.Equal(t, "/en", got["en"])
	assert.Equal(t, "/en", got["x-default"])
}

func TestTitleFor(t *testing.T) {
	m := For(locale.English, base)
	assert.Equal(t, m.Title.Default, m.TitleFor(""))
	assert.Equal(t, "Page not found | MK Portfolio", m.TitleFor("Page not found"))
}

func TestRobotsDirectives(t *testing.T) {
	r := For(locale.English, base).Robots
	assert.Equal(t, "index, follow", r.Content())
	assert.Equal(t, "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1", r.GoogleBot())
}

func TestManifest(t *testing.T) {
	m := Manifest(locale.Arabic)
	assert.Equal(t, "/ar", m.StartURL)
	assert.Equal(t, "rtl", m.Dir)
	assert.NotEmpty(t, m.Icons)
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap(base+"/", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, "<loc>"+base+"/ar</loc>")
	assert.Contains(t, s, "<loc>"+base+"/en</loc>")
	assert.Contains(t, s, `hreflang="ar"`)
	assert.Contains(t, s, "<lastmod>2025-03-01</lastmod>")
}

func TestRobotsTxt(t *testing.T) {
	txt := RobotsTxt(base)
	assert.Contains(t, txt, "Disallow: /admin/")
	assert.Contains(t, txt, "Sitemap: "+base+"/sitemap.xml")
}
