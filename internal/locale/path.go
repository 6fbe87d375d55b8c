package locale

import "strings"

// leadingSegment splits "/ar/projects" into "ar" and "/projects".
func leadingSegment(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i], trimmed[i:]
	}
	return trimmed, ""
}

// FromPath resolves the active locale from a request path. Only an exact
// leading "ar" segment selects Arabic; everything else is English.
func FromPath(path string) Locale {
	if !strings.HasPrefix(path, "/") {
		return Default
	}
	if segment, _ := leadingSegment(path); segment == string(Arabic) {
		return Arabic
	}
	return Default
}

// HasPrefix reports whether the path starts with an explicit locale segment.
func HasPrefix(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}
	segment, _ := leadingSegment(path)
	return segment == string(Arabic) || segment == string(English)
}

// StripPrefix removes the locale segment, returning "/" for a bare locale root.
func StripPrefix(path string) string {
	if !HasPrefix(path) {
		return path
	}
	_, rest := leadingSegment(path)
	if rest == "" {
		return "/"
	}
	return rest
}

// TogglePath returns the counterpart of path under the other locale.
//
// A leading locale segment is swapped and the remainder kept byte for byte.
// A path with no locale segment is implicitly English and gets the Arabic
// segment prepended.
func TogglePath(path string) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	current := FromPath(path)
	target := current.Other()
	if !HasPrefix(path) {
		return target.Prefix() + path
	}
	_, rest := leadingSegment(path)
	return target.Prefix() + rest
}

// Localize builds the path of an unprefixed route under l.
func Localize(l Locale, path string) string {
	if path == "" || path == "/" {
		return l.Prefix()
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.Prefix() + path
}
