package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

func TestDefaultPortfolioIsValid(t *testing.T) {
	require.NoError(t, Default.Validate())
}

func TestProjectImageInvariant(t *testing.T) {
	p := Portfolio{Projects: []Project{{Slug: "x", HasImage: true}}}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "x"`)
}

func TestDuplicateSlugRejected(t *testing.T) {
	p := Portfolio{Projects: []Project{{Slug: "a"}, {Slug: "a"}}}
	assert.Error(t, p.Validate())
}

func TestLocalizeArabic(t *testing.T) {
	page := Default.Localize(locale.Arabic)
	require.Len(t, page.Projects, len(Default.Projects))
	assert.Equal(t, "موقع وزارة المالية", page.Projects[0].Title)
	assert.Equal(t, "/static/img/mof.png", page.Projects[0].Image)
	assert.Equal(t, Default.Experiences[0].BulletsAr, page.Experiences[0].Bullets)

	bab := page.Projects[len(page.Projects)-1]
	assert.False(t, bab.Live)
	assert.Empty(t, bab.Image)
}

func TestLocalizeEnglish(t *testing.T) {
	page := Default.Localize(locale.English)
	assert.Equal(t, "Web Development", page.SkillGroups[0].Title)
	assert.Equal(t, "Principles of UX/UI Design — Meta (Coursera)", page.Courses[4].Name)
	assert.True(t, page.Projects[0].Live)
}

func TestWhatsAppLink(t *testing.T) {
	c := Contact{Phone: "967782902986", WhatsAppMessage: Text{En: "Hi there, ok?", Ar: "مرحبًا"}}
	assert.Equal(t, "https://wa.me/967782902986?text=Hi%20there%2C%20ok%3F", c.WhatsAppLink(locale.English))
	assert.Contains(t, c.WhatsAppLink(locale.Arabic), "?text=%D9%85")
}

func TestMailtoLink(t *testing.T) {
	c := Contact{Email: "mis.mdev@gmail.com"}
	assert.Equal(t, "mailto:mis.mdev@gmail.com", c.MailtoLink())
}

func TestProjectLookup(t *testing.T) {
	p, err := Default.Project("chatbit")
	require.NoError(t, err)
	assert.Equal(t, "https://chatbit-nxt.vercel.app/", p.Href)

	_, err = Default.Project("nope")
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}
