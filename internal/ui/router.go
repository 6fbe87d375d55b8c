package ui

import "sync"

// Router publishes path changes to subscribers, in subscription order.
type Router struct {
	mu        sync.Mutex
	path      string
	listeners map[int]func(string)
	order     []int
	next      int
}

// NewRouter starts at path.
func NewRouter(path string) *Router {
	return &Router{path: path, listeners: make(map[int]func(string))}
}

// Path returns the current path.
func (r *Router) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Subscribe registers fn for path changes and returns its cancel func.
func (r *Router) Subscribe(fn func(path string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	r.listeners[id] = fn
	r.order = append(r.order, id)
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Push navigates to path without reloading. Listeners run only when the path
// actually changes.
func (r *Router) Push(path string) {
	r.mu.Lock()
	if path == r.path {
		r.mu.Unlock()
		return
	}
	r.path = path
	fns := make([]func(string), 0, len(r.listeners))
	for _, id := range r.order {
		if fn, ok := r.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
}
