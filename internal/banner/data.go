package banner

// SlotCount is the number of benefit and proof slots every layout renders.
const SlotCount = 3

// Data is the fully defaulted content for one banner. It is implemented by
// *Offer and *AuthorityCard only.
type Data interface {
	Kind() Kind
	placeholders(set func(name, value string))
}

type Offer struct {
	Headline string
	SubBadge string
	CTA      string
	Benefits []string
}

func (*Offer) Kind() Kind { return OfferDirect }

func (o *Offer) placeholders(set func(name, value string)) {
	set("headline", o.Headline)
	set("sub_badge", o.SubBadge)
	set("cta", o.CTA)
	for i, b := range normalizeBenefits(o.Benefits) {
		set(slotName("benefit", i, ""), b)
	}
}

type Proof struct {
	Value string
	Label string
}

type AuthorityCard struct {
	Headline    string
	CTA         string
	Brand       string
	Badge       string
	Proofs      []Proof
	FooterLeft  string
	FooterRight string
}

func (*AuthorityCard) Kind() Kind { return Authority }

func (a *AuthorityCard) placeholders(set func(name, value string)) {
	set("headline", a.Headline)
	set("cta", a.CTA)
	set("brand", a.Brand)
	set("authority_badge", a.Badge)
	for i, p := range normalizeProofs(a.Proofs) {
		set(slotName("proof", i, ""), p.Value)
		set(slotName("proof", i, "_label"), p.Label)
	}
	set("footer_left", a.FooterLeft)
	set("footer_right", a.FooterRight)
}

// normalizeBenefits returns exactly SlotCount entries: missing ones are empty,
// extras are dropped.
func normalizeBenefits(in []string) [SlotCount]string {
	var out [SlotCount]string
	copy(out[:], in)
	return out
}

func normalizeProofs(in []Proof) [SlotCount]Proof {
	var out [SlotCount]Proof
	copy(out[:], in)
	return out
}
