package prompt

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

type ConciergeData struct {
	SiteName     string
	Portfolio    string
	LanguageName string
	Contact      string
}

// LanguageName is the English name the model is told to answer in.
func LanguageName(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return "English"
	}
	return "Spanish"
}

// BuildConciergeSystem renders the concierge system instruction. portfolio is
// the JSON catalog summary embedded verbatim.
func (b *Builder) BuildConciergeSystem(siteName, portfolio, contact string, lang domain.Language) (string, error) {
	if siteName == "" {
		siteName = "Meta Travels"
	}
	if portfolio == "" {
		portfolio = "[]"
	}
	return b.Render(TemplateConciergeSystem, ConciergeData{
		SiteName:     siteName,
		Portfolio:    portfolio,
		LanguageName: LanguageName(lang),
		Contact:      contact,
	})
}
