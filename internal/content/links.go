package content

import (
	"net/url"
	"strings"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

// Contact holds the fixed outbound contact details.
type Contact struct {
	Phone           string // digits only, international format
	Email           string
	WhatsAppMessage Text
}

// WhatsAppLink builds a wa.me deep link with a pre-filled message for l.
func (c Contact) WhatsAppLink(l locale.Locale) string {
	text := strings.ReplaceAll(url.QueryEscape(c.WhatsAppMessage.In(l)), "+", "%20")
	return "https://wa.me/" + c.Phone + "?text=" + text
}

// MailtoLink builds the mailto: link.
func (c Contact) MailtoLink() string {
	return (&url.URL{Scheme: "mailto", Opaque: c.Email}).String()
}
