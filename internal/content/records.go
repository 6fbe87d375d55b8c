// Package content holds the portfolio's fixed display records.
package content

import (
	"errors"
	"fmt"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

// ErrProjectNotFound is returned when a project slug does not exist.
var ErrProjectNotFound = errors.New("project not found")

// Text is a string with an English and an Arabic rendering.
type Text struct {
	En string
	Ar string
}

// In returns the rendering for l.
func (t Text) In(l locale.Locale) string {
	if l == locale.Arabic {
		return t.Ar
	}
	return t.En
}

// Experience is one position held.
type Experience struct {
	Icon      string
	Title     Text
	Dates     Text
	BulletsEn []string
	BulletsAr []string
}

// Bullets returns the bullet list for l.
func (e Experience) Bullets(l locale.Locale) []string {
	if l == locale.Arabic {
		return e.BulletsAr
	}
	return e.BulletsEn
}

// SkillGroup is a titled list of skills. Items are not translated.
type SkillGroup struct {
	Icon  string
	Title Text
	Items []string
}

// Course is a completed course or certificate.
type Course struct {
	Icon string
	Name Text
}

// Project links to a piece of work. HasImage requires Image.
type Project struct {
	Slug        string
	Title       Text
	Description Text
	Tags        []string
	Href        string
	HasImage    bool
	Image       string
}

// HasLiveLink reports whether the project points somewhere real.
func (p Project) HasLiveLink() bool {
	return p.Href != "" && p.Href != "#"
}

// Validate checks the image invariant.
func (p Project) Validate() error {
	if p.HasImage && p.Image == "" {
		return fmt.Errorf("project %q declares an image but has no image path", p.Slug)
	}
	return nil
}

// Portfolio is the full set of records shown on the page.
type Portfolio struct {
	Experiences []Experience
	SkillGroups []SkillGroup
	Courses     []Course
	Projects    []Project
	Contact     Contact
}

// Validate checks every record invariant.
func (p *Portfolio) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, project := range p.Projects {
		if err := project.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[project.Slug] {
			errs = append(errs, fmt.Errorf("duplicate project slug %q", project.Slug))
		}
		seen[project.Slug] = true
	}
	for _, e := range p.Experiences {
		if len(e.BulletsEn) != len(e.BulletsAr) {
			errs = append(errs, fmt.Errorf("experience %q: bullet count differs between locales", e.Title.En))
		}
	}
	return errors.Join(errs...)
}

// Project returns the project with slug.
func (p *Portfolio) Project(slug string) (*Project, error) {
	for i := range p.Projects {
		if p.Projects[i].Slug == slug {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}
