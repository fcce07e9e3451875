package banner

import (
	"strconv"
	"strings"
)

// Placeholders lists every {{name}} token Fill substitutes. Tokens outside this
// set are left in the output untouched.
var Placeholders = []string{
	"headline", "cta", "sub_badge",
	"benefit_1", "benefit_2", "benefit_3",
	"brand", "authority_badge",
	"proof_1", "proof_1_label",
	"proof_2", "proof_2_label",
	"proof_3", "proof_3_label",
	"footer_left", "footer_right",
}

// Fill replaces every occurrence of each known placeholder in tpl with the
// escaped value from data. Placeholders that belong to the other layout
// render as empty strings.
func Fill(tpl string, data Data) string {
	values := make(map[string]string, len(Placeholders))
	for _, name := range Placeholders {
		values[name] = ""
	}
	if data != nil {
		data.placeholders(func(name, value string) {
			values[name] = Escape(value)
		})
	}

	pairs := make([]string, 0, 2*len(Placeholders))
	for _, name := range Placeholders {
		pairs = append(pairs, "{{"+name+"}}", values[name])
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func slotName(prefix string, i int, suffix string) string {
	return prefix + "_" + strconv.Itoa(i+1) + suffix
}
