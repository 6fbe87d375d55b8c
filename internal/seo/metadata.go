// Package seo builds the per-locale document metadata: title, description,
// canonical and alternate links, Open Graph and Twitter card fields, icons and
// the web manifest reference.
package seo

import (
	"fmt"
	"strings"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

const (
	SharingImage   = "/static/icon-for-sharing.png"
	ManifestPath   = "/manifest.webmanifest"
	TwitterCreator = "@mohnd_khalid_hubaishan"
	Category       = "portfolio"
)

type Title struct {
	Default  string `json:"default"`
	Template string `json:"template"`
}

type Robots struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	NoImageIndex    bool   `json:"noimageindex"`
	MaxVideoPreview int    `json:"max_video_preview"`
	MaxImagePreview string `json:"max_image_preview"`
	MaxSnippet      int    `json:"max_snippet"`
}

// Content renders the robots meta tag value.
func (r Robots) Content() string {
	parts := []string{boolDirective(r.Index, "index", "noindex"), boolDirective(r.Follow, "follow", "nofollow")}
	return strings.Join(parts, ", ")
}

// GoogleBot renders the googlebot meta tag value.
func (r Robots) GoogleBot() string {
	parts := []string{
		boolDirective(r.Index, "index", "noindex"),
		boolDirective(r.Follow, "follow", "nofollow"),
	}
	if r.NoImageIndex {
		parts = append(parts, "noimageindex")
	}
	parts = append(parts,
		fmt.Sprintf("max-video-preview:%d", r.MaxVideoPreview),
		"max-image-preview:"+r.MaxImagePreview,
		fmt.Sprintf("max-snippet:%d", r.MaxSnippet),
	)
	return strings.Join(parts, ", ")
}

func boolDirective(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

type Alternate struct {
	HrefLang string `json:"hreflang"`
	Href     string `json:"href"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Type   string `json:"type,omitempty"`
}

type OpenGraph struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SiteName        string   `json:"site_name"`
	Images          []Image  `json:"images"`
	Locale          string   `json:"locale"`
	AlternateLocale []string `json:"alternate_locale"`
	Type            string   `json:"type"`
	URL             string   `json:"url"`
}

type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Creator     string   `json:"creator"`
	Images      []string `json:"images"`
}

type Icon struct {
	Rel   string `json:"rel"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
	Sizes string `json:"sizes,omitempty"`
}

// Metadata is everything the document head declares for one locale.
type Metadata struct {
	Locale      locale.Locale `json:"locale"`
	Lang        string        `json:"lang"`
	Dir         string        `json:"dir"`
	BaseURL     string        `json:"base_url"`
	Title       Title         `json:"title"`
	Description string        `json:"description"`
	Keywords    []string      `json:"keywords"`
	Author      string        `json:"author"`
	Creator     string        `json:"creator"`
	Publisher   string        `json:"publisher"`
	Category    string        `json:"category"`
	Robots      Robots        `json:"robots"`
	Canonical   string        `json:"canonical"`
	Alternates  []Alternate   `json:"alternates"`
	OpenGraph   OpenGraph     `json:"open_graph"`
	Twitter     Twitter       `json:"twitter"`
	Icons       []Icon        `json:"icons"`
	Manifest    string        `json:"manifest"`
}

// KeywordList joins the keywords for the meta tag.
func (m Metadata) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// TitleFor applies the title template to a page name; an empty name yields
// the default title.
func (m Metadata) TitleFor(page string) string {
	if strings.TrimSpace(page) == "" {
		return m.Title.Default
	}
	return strings.Replace(m.Title.Template, "%s", page, 1)
}

// Absolute resolves a site path against the base URL.
func (m Metadata) Absolute(path string) string {
	return strings.TrimRight(m.BaseURL, "/") + path
}

// For returns the metadata for l.
func For(l locale.Locale, baseURL string) Metadata {
	c := copyFor(l)
	home := l.Prefix()
	alternateLocale := []string{l.Other().OGLocale()}

	alternates := make([]Alternate, 0, len(locale.Supported)+1)
	for _, s := range []locale.Locale{locale.Arabic, locale.English} {
		alternates = append(alternates, Alternate{HrefLang: s.String(), Href: s.Prefix()})
	}
	alternates = append(alternates, Alternate{HrefLang: "x-default", Href: locale.Default.Prefix()})

	return Metadata{
		Locale:      l,
		Lang:        l.String(),
		Dir:         l.Dir(),
		BaseURL:     baseURL,
		Title:       Title{Default: c.title, Template: c.template},
		Description: c.description,
		Keywords:    c.keywords,
		Author:      c.siteName,
		Creator:     c.siteName,
		Publisher:   c.siteName,
		Category:    Category,
		Robots: Robots{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
		Canonical:  home,
		Alternates: alternates,
		OpenGraph: OpenGraph{
			Title:       c.title,
			Description: c.description,
			SiteName:    c.siteName,
			Images: []Image{{
				URL: SharingImage, Width: 1200, Height: 630, Alt: c.altText, Type: "image/png",
			}},
			Locale:          l.OGLocale(),
			AlternateLocale: alternateLocale,
			Type:            "website",
			URL:             home,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       c.title,
			Description: c.description,
			Creator:     TwitterCreator,
			Images:      []string{SharingImage},
		},
		Icons: []Icon{
			{Rel: "icon", URL: "/static/favicon.ico", Type: "image/x-icon"},
			{Rel: "icon", URL: "/static/favicon-16x16.png", Type: "image/png", Sizes: "16x16"},
			{Rel: "icon", URL: "/static/favicon-32x32.png", Type: "image/png", Sizes: "32x32"},
			{Rel: "icon", URL: "/static/favicon-192x192.png", Type: "image/png", Sizes: "192x192"},
			{Rel: "apple-touch-icon", URL: "/static/apple-touch-icon.png", Sizes: "180x180"},
		},
		Manifest: ManifestPath,
	}
}
