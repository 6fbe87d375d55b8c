package ui

import (
	"strings"
	"sync"
)

// ScrollRequest mirrors the options passed to Element.scrollIntoView.
type ScrollRequest struct {
	ID       string `json:"id"`
	Behavior string `json:"behavior"`
	Block    string `json:"block"`
}

// Scroller performs a scroll; the page renderer and tests provide one.
type Scroller interface {
	ScrollIntoView(req ScrollRequest)
}

// ScrollerFunc adapts a plain function to Scroller.
type ScrollerFunc func(ScrollRequest)

func (f ScrollerFunc) ScrollIntoView(req ScrollRequest) { f(req) }

// Section is a named region of the page targeted by in-page navigation.
type Section struct {
	ID       string
	LabelKey string
}

// Navigator resolves anchors to registered sections.
type Navigator struct {
	mu       sync.RWMutex
	sections []Section
	index    map[string]int
	scroller Scroller
}

// NewNavigator registers sections in display order.
func NewNavigator(scroller Scroller, sections ...Section) *Navigator {
	n := &Navigator{index: make(map[string]int), scroller: scroller}
	for _, s := range sections {
		n.Register(s)
	}
	return n
}

// Register adds a section, replacing one with the same id.
func (n *Navigator) Register(s Section) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i, ok := n.index[s.ID]; ok {
		n.sections[i] = s
		return
	}
	n.index[s.ID] = len(n.sections)
	n.sections = append(n.sections, s)
}

// Lookup finds a section by anchor, with or without the leading '#'.
func (n *Navigator) Lookup(hash string) (Section, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.index[id]
	if !ok || id == "" {
		return Section{}, false
	}
	return n.sections[i], true
}

// Sections returns the registered sections in order.
func (n *Navigator) Sections() []Section {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Section, len(n.sections))
	copy(out, n.sections)
	return out
}

// ScrollTo scrolls the section for hash into view with its top edge aligned.
// An unknown anchor does nothing and reports false.
func (n *Navigator) ScrollTo(hash string) bool {
	s, ok := n.Lookup(hash)
	if !ok {
		return false
	}
	if n.scroller != nil {
		n.scroller.ScrollIntoView(ScrollRequest{ID: s.ID, Behavior: "smooth", Block: "start"})
	}
	return true
}
