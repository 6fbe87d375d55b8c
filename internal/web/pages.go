package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkhubaishan/mk-portfolio/internal/content"
	"github.com/mkhubaishan/mk-portfolio/internal/locale"
	"github.com/mkhubaishan/mk-portfolio/internal/seo"
	"github.com/mkhubaishan/mk-portfolio/internal/ui"
)

// PageContext is the document-level presentation state handed to the root
// template: it sets <html lang dir> instead of mutating a global document.
type PageContext struct {
	Locale locale.Locale
	Lang   string
	Dir    string
	Path   string
}

func newPageContext(path string) PageContext {
	l := locale.FromPath(path)
	return PageContext{Locale: l, Lang: l.String(), Dir: l.Dir(), Path: path}
}

type navEntry struct {
	ID    string
	Label string
	Href  string
}

type drawerData struct {
	Open      bool
	OpenHref  string
	CloseHref string
	Side      string
}

type pageData struct {
	Ctx          PageContext
	Locale       locale.Locale
	Meta         seo.Metadata
	Title        string
	Page         content.Page
	Nav          []navEntry
	Drawer       drawerData
	BodyOverflow string
	ToggleHref   string
	HomeHref     string
}

func (s *Server) redirectToLocale(c *gin.Context) {
	l := locale.Match(c.GetHeader("Accept-Language"))
	c.Redirect(http.StatusFound, l.Prefix())
}

// home renders the single page. Without JavaScript the drawer is driven by
// the "menu" query parameter; every link out of the open drawer drops it,
// which is the route change that closes the drawer.
func (s *Server) home(c *gin.Context) {
	path := c.Request.URL.Path
	view := ui.NewView(path)
	if c.Query("menu") == "open" {
		view.Drawer.Open()
	}
	defer view.Drawer.Detach()

	ctx := newPageContext(path)
	l := ctx.Locale
	home := l.Prefix()

	nav := make([]navEntry, 0, len(ui.PageSections))
	for _, section := range view.Navigator.Sections() {
		nav = append(nav, navEntry{
			ID:    section.ID,
			Label: s.bundle.T(l, section.LabelKey),
			Href:  home + "#" + section.ID,
		})
	}

	side := "left"
	if l.IsRTL() {
		side = "right"
	}

	meta := seo.For(l, s.cfg.BaseURL)
	c.Header("Content-Language", l.String())
	c.HTML(http.StatusOK, "index.html", pageData{
		Ctx:    ctx,
		Locale: l,
		Meta:   meta,
		Title:  meta.TitleFor(""),
		Page:   s.portfolio.Localize(l),
		Nav:    nav,
		Drawer: drawerData{
			Open:      view.Drawer.IsOpen(),
			OpenHref:  path + "?menu=open",
			CloseHref: path,
			Side:      side,
		},
		BodyOverflow: view.Document.BodyOverflow,
		ToggleHref:   view.Switcher.Target(),
		HomeHref:     home,
	})
}

func (s *Server) notFound(c *gin.Context) {
	path := c.Request.URL.Path
	ctx := newPageContext(path)
	meta := seo.For(ctx.Locale, s.cfg.BaseURL)
	c.HTML(http.StatusNotFound, "notfound.html", pageData{
		Ctx:      ctx,
		Locale:   ctx.Locale,
		Meta:     meta,
		Title:    meta.TitleFor(s.bundle.T(ctx.Locale, "notfound.title")),
		Page:     s.portfolio.Localize(ctx.Locale),
		HomeHref: ctx.Locale.Prefix(),
	})
}
