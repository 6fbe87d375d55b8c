package ui

import "github.com/mkhubaishan/mk-portfolio/internal/locale"

// PageSections are the anchor targets of the single page, in nav order.
var PageSections = []Section{
	{ID: "projects", LabelKey: "nav.projects"},
	{ID: "experience", LabelKey: "nav.experience"},
	{ID: "skills", LabelKey: "nav.skills"},
	{ID: "courses", LabelKey: "nav.courses"},
}

// View bundles the interactive state of one rendered page.
type View struct {
	Document  *Document
	Lock      *ScrollLock
	Router    *Router
	Navigator *Navigator
	Drawer    *Drawer
	Switcher  *LanguageSwitcher
	Scrolls   []ScrollRequest
}

// NewView builds the page state for path with the drawer closed.
func NewView(path string) *View {
	v := &View{Document: &Document{}}
	v.Lock = NewScrollLock(v.Document)
	v.Router = NewRouter(path)
	v.Navigator = NewNavigator(ScrollerFunc(func(req ScrollRequest) {
		v.Scrolls = append(v.Scrolls, req)
	}), PageSections...)
	v.Drawer = NewDrawer(v.Lock, v.Navigator, v.Router)
	v.Switcher = NewLanguageSwitcher(v.Router)
	return v
}

// Locale returns the locale of the current path.
func (v *View) Locale() locale.Locale {
	return locale.FromPath(v.Router.Path())
}
