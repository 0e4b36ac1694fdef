package export

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Labeler maps a field name to its display label.
type Labeler func(name string) string

// LabelsFrom returns a Labeler backed by labels, humanizing unknown names.
func LabelsFrom(labels map[string]string) Labeler {
	return func(name string) string {
		if l, ok := labels[name]; ok && l != "" {
			return l
		}
		return Humanize(name)
	}
}

// FormLabels labels fields with the declared labels of f's controls.
func FormLabels(f *form.Form) Labeler {
	labels := make(map[string]string)
	if f != nil {
		for _, c := range f.Controls {
			if _, ok := labels[c.Name]; !ok && c.Label != "" {
				labels[c.Name] = c.Label
			}
		}
	}
	return LabelsFrom(labels)
}

// Humanize turns "first_name", "first-name" or "firstName" into "First name".
func Humanize(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	words := strings.Fields(cases.Lower(language.English).String(b.String()))
	if len(words) == 0 {
		return ""
	}
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

// plainText strips markup so user input renders literally.
type plainText struct {
	policy *bluemonday.Policy
}

func newPlainText() plainText {
	return plainText{policy: bluemonday.StrictPolicy()}
}

// Clean removes tags, unescapes entities left by the policy and drops
// control characters other than newlines and tabs.
func (p plainText) Clean(s string) string {
	s = p.policy.Sanitize(s)
	s = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'").Replace(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
