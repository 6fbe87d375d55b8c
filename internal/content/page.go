package content

import "github.com/mkhubaishan/mk-portfolio/internal/locale"

// The localized views below are what templates and the JSON API render.

type ExperienceView struct {
	Icon    string   `json:"icon"`
	Title   string   `json:"title"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

type SkillGroupView struct {
	Icon  string   `json:"icon"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type CourseView struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

type ProjectView struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Href        string   `json:"href"`
	Live        bool     `json:"live"`
	Image       string   `json:"image,omitempty"`
}

type ContactView struct {
	Email    string `json:"email"`
	Mailto   string `json:"mailto"`
	WhatsApp string `json:"whatsapp"`
}

// Page is the portfolio rendered in one locale.
type Page struct {
	Locale      locale.Locale    `json:"locale"`
	Experiences []ExperienceView `json:"experiences"`
	SkillGroups []SkillGroupView `json:"skill_groups"`
	Courses     []CourseView     `json:"courses"`
	Projects    []ProjectView    `json:"projects"`
	Contact     ContactView      `json:"contact"`
}

// Localize renders the portfolio in l.
func (p *Portfolio) Localize(l locale.Locale) Page {
	page := Page{
		Locale:      l,
		Experiences: make([]ExperienceView, 0, len(p.Experiences)),
		SkillGroups: make([]SkillGroupView, 0, len(p.SkillGroups)),
		Courses:     make([]CourseView, 0, len(p.Courses)),
		Projects:    make([]ProjectView, 0, len(p.Projects)),
		Contact: ContactView{
			Email:    p.Contact.Email,
			Mailto:   p.Contact.MailtoLink(),
			WhatsApp: p.Contact.WhatsAppLink(l),
		},
	}
	for _, e := range p.Experiences {
		page.Experiences = append(page.Experiences, ExperienceView{
			Icon: e.Icon, Title: e.Title.In(l), Dates: e.Dates.In(l), Bullets: e.Bullets(l),
		})
	}
	for _, g := range p.SkillGroups {
		page.SkillGroups = append(page.SkillGroups, SkillGroupView{Icon: g.Icon, Title: g.Title.In(l), Items: g.Items})
	}
	for _, c := range p.Courses {
		page.Courses = append(page.Courses, CourseView{Icon: c.Icon, Name: c.Name.In(l)})
	}
	for _, pr := range p.Projects {
		view := ProjectView{
			Slug:        pr.Slug,
			Title:       pr.Title.In(l),
			Description: pr.Description.In(l),
			Tags:        pr.Tags,
			Href:        pr.Href,
			Live:        pr.HasLiveLink(),
		}
		if pr.HasImage {
			view.Image = pr.Image
		}
		page.Projects = append(page.Projects, view)
	}
	return page
}
