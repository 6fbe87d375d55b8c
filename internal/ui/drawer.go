package ui

// DrawerState is the visibility of the mobile navigation drawer.
type DrawerState int

const (
	Closed DrawerState = iota
	Open
)

func (s DrawerState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CloseReason records what dismissed the drawer.
type CloseReason int

const (
	CloseButton CloseReason = iota
	Overlay
	NavEntry
	Escape
	RouteChange
)

func (r CloseReason) String() string {
	switch r {
	case CloseButton:
		return "close-button"
	case Overlay:
		return "overlay"
	case NavEntry:
		return "nav-entry"
	case Escape:
		return "escape"
	case RouteChange:
		return "route-change"
	}
	return "unknown"
}

// Drawer is the mobile navigation controller. It holds the scroll lock for
// exactly as long as it is open. Like the browser event loop it models, a
// Drawer is driven from one goroutine.
type Drawer struct {
	state     DrawerState
	lock      *ScrollLock
	release   func()
	nav       *Navigator
	lastPath  string
	unsub     func()
	lastClose CloseReason
}

// NewDrawer creates a closed drawer. When router is non-nil the drawer
// closes whenever the router's path changes.
func NewDrawer(lock *ScrollLock, nav *Navigator, router *Router) *Drawer {
	d := &Drawer{lock: lock, nav: nav}
	if router != nil {
		d.lastPath = router.Path()
		d.unsub = router.Subscribe(d.OnPathChange)
	}
	return d
}

// State returns the current state.
func (d *Drawer) State() DrawerState { return d.state }

// IsOpen reports whether the drawer is open.
func (d *Drawer) IsOpen() bool { return d.state == Open }

// LastCloseReason returns the cause of the most recent close.
func (d *Drawer) LastCloseReason() CloseReason { return d.lastClose }

// Open shows the drawer and suspends page scrolling.
func (d *Drawer) Open() {
	if d.state == Open {
		return
	}
	d.state = Open
	if d.lock != nil {
		d.release = d.lock.Acquire()
	}
}

// Toggle flips the drawer.
func (d *Drawer) Toggle() {
	if d.state == Open {
		d.Close(CloseButton)
		return
	}
	d.Open()
}

// Close hides the drawer and restores scrolling. Closing a closed drawer is a no-op.
func (d *Drawer) Close(reason CloseReason) {
	if d.state == Closed {
		return
	}
	d.state = Closed
	d.lastClose = reason
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

// HandleKey closes the drawer on Escape.
func (d *Drawer) HandleKey(key string) {
	if key == "Escape" || key == "Esc" {
		d.Close(Escape)
	}
}

// Select handles a navigation entry: close first, then scroll to the anchor.
// It reports whether the anchor resolved to a section.
func (d *Drawer) Select(anchor string) bool {
	d.Close(NavEntry)
	if d.nav == nil {
		return false
	}
	return d.nav.ScrollTo(anchor)
}

// OnPathChange closes the drawer when the active path differs from the last one seen.
func (d *Drawer) OnPathChange(path string) {
	if path == d.lastPath {
		return
	}
	d.lastPath = path
	d.Close(RouteChange)
}

// Detach stops listening for route changes and releases the scroll lock.
func (d *Drawer) Detach() {
	if d.unsub != nil {
		d.unsub()
		d.unsub = nil
	}
	d.Close(RouteChange)
}
