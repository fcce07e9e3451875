// Package banner resolves banner requests into template data and fills HTML templates.
package banner

import "strings"

type Kind int

const (
	OfferDirect Kind = iota
	Authority
)

// ParseKind maps the template query value to a Kind. Anything unrecognised,
// including the empty string, selects OfferDirect.
func ParseKind(s string) Kind {
	if strings.ToLower(s) == "authority" {
		return Authority
	}
	return OfferDirect
}

func (k Kind) String() string {
	if k == Authority {
		return "authority"
	}
	return "offer_direct"
}

// TemplateFile is the name of the HTML file holding this layout.
func (k Kind) TemplateFile() string {
	if k == Authority {
		return "authority.html"
	}
	return "offer-direct.html"
}
