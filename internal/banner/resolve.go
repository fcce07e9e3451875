package banner

import "net/url"

// Default copy used when a query parameter is absent or empty.
const (
	DefaultOfferHeadline = "BLACK FRIDAY OFERTA"
	DefaultOfferSubBadge = "PACK X2"
	DefaultOfferCTA      = "COMPRAR AHORA"

	DefaultAuthorityHeadline = "RESULTADOS COMPROBADOS"
	DefaultAuthorityCTA      = "AGENDA UNA LLAMADA"
	DefaultBrand             = "TU MARCA"
	DefaultAuthorityBadge    = "CASOS REALES"
	DefaultFooterLeft        = "www.tumarca.com"
	DefaultFooterRight       = "@tumarca"
)

var (
	DefaultBenefits = [SlotCount]string{"REPARA", "NUTRE", "BRILLO"}
	DefaultProofs   = [SlotCount]Proof{
		{Value: "+500", Label: "CLIENTES"},
		{Value: "98%", Label: "SATISFACCIÓN"},
		{Value: "10 AÑOS", Label: "EXPERIENCIA"},
	}
)

var (
	benefitKeys = [SlotCount]string{"b1", "b2", "b3"}
	proofKeys   = [SlotCount][2]string{{"p1", "p1l"}, {"p2", "p2l"}, {"p3", "p3l"}}
)

// Resolve picks the layout named by the template parameter and builds its
// data, falling back to the layout's default copy for every missing field.
// It returns the template file to load alongside the data.
func Resolve(query url.Values) (string, Data) {
	kind := ParseKind(query.Get("template"))
	if kind == Authority {
		return kind.TemplateFile(), resolveAuthority(query)
	}
	return kind.TemplateFile(), resolveOffer(query)
}

func resolveOffer(q url.Values) *Offer {
	o := &Offer{
		Headline: param(q, "headline", DefaultOfferHeadline),
		SubBadge: param(q, "sub_badge", DefaultOfferSubBadge),
		CTA:      param(q, "cta", DefaultOfferCTA),
		Benefits: make([]string, SlotCount),
	}
	for i, key := range benefitKeys {
		o.Benefits[i] = param(q, key, DefaultBenefits[i])
	}
	return o
}

func resolveAuthority(q url.Values) *AuthorityCard {
	a := &AuthorityCard{
		Headline:    param(q, "headline", DefaultAuthorityHeadline),
		CTA:         param(q, "cta", DefaultAuthorityCTA),
		Brand:       param(q, "brand", DefaultBrand),
		Badge:       param(q, "badge", DefaultAuthorityBadge),
		Proofs:      make([]Proof, SlotCount),
		FooterLeft:  param(q, "fl", DefaultFooterLeft),
		FooterRight: param(q, "fr", DefaultFooterRight),
	}
	for i, keys := range proofKeys {
		a.Proofs[i] = Proof{
			Value: param(q, keys[0], DefaultProofs[i].Value),
			Label: param(q, keys[1], DefaultProofs[i].Label),
		}
	}
	return a
}

func param(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return fallback
}
