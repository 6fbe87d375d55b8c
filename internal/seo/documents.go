package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// WebManifest is the manifest.webmanifest document.
type WebManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	Lang            string         `json:"lang"`
	Dir             string         `json:"dir"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// Manifest returns the web manifest for l.
func Manifest(l locale.Locale) WebManifest {
	c := copyFor(l)
	return WebManifest{
		Name:            c.title,
		ShortName:       c.siteName,
		Description:     c.description,
		Lang:            l.String(),
		Dir:             l.Dir(),
		StartURL:        l.Prefix(),
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#ef4444",
		Icons: []ManifestIcon{
			{Src: "/static/favicon-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/static/apple-touch-icon.png", Sizes: "180x180", Type: "image/png"},
		},
	}
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapURL struct {
	Loc          string        `xml:"loc"`
	LastModified string        `xml:"lastmod,omitempty"`
	Links        []sitemapLink `xml:"xhtml:link"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders sitemap.xml listing both locale roots with hreflang alternates.
func Sitemap(baseURL string, modified time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, l := range locale.Supported {
		entry := sitemapURL{Loc: base + l.Prefix()}
		if !modified.IsZero() {
			entry.LastModified = modified.UTC().Format("2006-01-02")
		}
		for _, alt := range locale.Supported {
			entry.Links = append(entry.Links, sitemapLink{Rel: "alternate", HrefLang: alt.String(), Href: base + alt.Prefix()})
		}
		set.URLs = append(set.URLs, entry)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt allows everything except the admin area and points at the sitemap.
func RobotsTxt(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Sitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n")
	return b.String()
}
