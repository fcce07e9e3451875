package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const offerTpl = `<h1>{{headline}}</h1><title>{{headline}}</title><span>{{sub_badge}}</span>` +
	`<ul><li>{{benefit_1}}</li><li>{{benefit_2}}</li><li>{{benefit_3}}</li></ul><a>{{cta}}</a>`

func TestFillBenefitSlots(t *testing.T) {
	tests := []struct {
		name     string
		benefits []string
		want     string
	}{
		{name: "none", benefits: nil, want: "[||]"},
		{name: "one", benefits: []string{"A"}, want: "[A||]"},
		{name: "two", benefits: []string{"A", "B"}, want: "[A|B|]"},
		{name: "three", benefits: []string{"A", "B", "C"}, want: "[A|B|C]"},
		{name: "four", benefits: []string{"A", "B", "C", "D"}, want: "[A|B|C]"},
		{name: "five", benefits: []string{"A", "B", "C", "D", "E"}, want: "[A|B|C]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fill("[{{benefit_1}}|{{benefit_2}}|{{benefit_3}}]", &Offer{Benefits: tc.benefits})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFillProofSlots(t *testing.T) {
	tpl := "{{proof_1}}:{{proof_1_label}},{{proof_2}}:{{proof_2_label}},{{proof_3}}:{{proof_3_label}}"
	got := Fill(tpl, &AuthorityCard{Proofs: []Proof{{Value: "1", Label: "a"}, {Value: "2", Label: "b"}, {}, {Value: "x", Label: "y"}}})
	assert.Equal(t, "1:a,2:b,:", got)
}

func TestFillReplacesEveryOccurrenceAndEscapes(t *testing.T) {
	got := Fill(offerTpl, &Offer{
		Headline: `<script>alert("x")</script>`,
		SubBadge: "PACK",
		CTA:      "$1 & $&",
		Benefits: []string{"uno"},
	})

	assert.Equal(t, 2, strings.Count(got, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "<a>$1 &amp; $&amp;</a>")
	assert.Contains(t, got, "<li>uno</li><li></li><li></li>")
	assert.NotContains(t, got, "{{")
}

func TestFillBlanksPlaceholdersOfOtherLayout(t *testing.T) {
	tpl := "{{brand}}|{{authority_badge}}|{{footer_left}}|{{footer_right}}|{{proof_2_label}}|{{headline}}"
	assert.Equal(t, "|||||H", Fill(tpl, &Offer{Headline: "H"}))

	tpl = "{{sub_badge}}|{{benefit_1}}|{{brand}}"
	assert.Equal(t, "||B", Fill(tpl, &AuthorityCard{Brand: "B"}))
}

func TestFillLeavesUnknownPlaceholders(t *testing.T) {
	got := Fill("{{headline}} {{price}} {{ headline }}", &Offer{Headline: "H"})
	assert.Equal(t, "H {{price}} {{ headline }}", got)
}

func TestFillDoesNotResubstituteValues(t *testing.T) {
	got := Fill("{{headline}}|{{cta}}", &Offer{Headline: "{{cta}}", CTA: "C"})
	assert.Equal(t, "{{cta}}|C", got)
}

func TestFillDeterministic(t *testing.T) {
	data := &AuthorityCard{Headline: "H", Proofs: []Proof{{Value: "1", Label: "l"}}}
	assert.Equal(t, Fill(offerTpl, data), Fill(offerTpl, data))
}

func TestPlaceholdersCoverAllSlots(t *testing.T) {
	seen := map[string]bool{}
	(&Offer{}).placeholders(func(name, _ string) { seen[name] = true })
	(&AuthorityCard{}).placeholders(func(name, _ string) { seen[name] = true })
	assert.Len(t, seen, len(Placeholders))
	for _, name := range Placeholders {
		assert.True(t, seen[name], "placeholder %s has no source field", name)
	}
}
