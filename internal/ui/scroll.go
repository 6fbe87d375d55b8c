package ui

// Document is the page-level state the drawer touches: the body overflow style.
type Document struct {
	BodyOverflow string
}

// ScrollLock suspends page scrolling while held. Acquire stores the overflow
// value in effect at that moment and Release puts it back. A second Acquire
// while held is ignored, so nested or repeated opens cannot overwrite the
// saved value with "hidden".
type ScrollLock struct {
	doc   *Document
	prev  string
	held  bool
	count int
}

// NewScrollLock creates a lock bound to doc.
func NewScrollLock(doc *Document) *ScrollLock {
	if doc == nil {
		doc = &Document{}
	}
	return &ScrollLock{doc: doc}
}

// Acquire hides body overflow and returns the matching release func.
// Calling the release func more than once is safe.
func (s *ScrollLock) Acquire() func() {
	if s.held {
		return func() {}
	}
	s.prev = s.doc.BodyOverflow
	s.doc.BodyOverflow = "hidden"
	s.held = true
	s.count++
	generation := s.count
	return func() {
		if !s.held || s.count != generation {
			return
		}
		s.doc.BodyOverflow = s.prev
		s.held = false
	}
}

// Held reports whether scrolling is currently suspended.
func (s *ScrollLock) Held() bool { return s.held }

// Document returns the document the lock is bound to.
func (s *ScrollLock) Document() *Document { return s.doc }
