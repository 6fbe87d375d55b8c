package ui

import "github.com/mkhubaishan/mk-portfolio/internal/locale"

// LanguageSwitcher toggles the locale by navigating to the counterpart path.
type LanguageSwitcher struct {
	router *Router
}

// NewLanguageSwitcher binds the switcher to router.
func NewLanguageSwitcher(router *Router) *LanguageSwitcher {
	return &LanguageSwitcher{router: router}
}

// Current returns the locale of the router's path.
func (s *LanguageSwitcher) Current() locale.Locale {
	return locale.FromPath(s.router.Path())
}

// Target returns the path the next toggle navigates to.
func (s *LanguageSwitcher) Target() string {
	return locale.TogglePath(s.router.Path())
}

// Toggle pushes the counterpart path and returns it.
func (s *LanguageSwitcher) Toggle() string {
	next := s.Target()
	s.router.Push(next)
	return next
}
