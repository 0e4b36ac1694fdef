package form

import "strings"

// Kind is the declared validation category of a control.
type Kind uint8

const (
	// KindNone marks controls without a (recognised) kind tag. Always valid.
	KindNone Kind = iota
	KindText
	KindEmail
	KindPhone
	KindNumber
	KindDate
	KindSelect
	KindCheckboxGroup
	KindRadio
	KindRequiredCheckbox
	KindTextarea
)

var kindTags = map[Kind]string{
	KindNone:             "",
	KindText:             "text",
	KindEmail:            "email",
	KindPhone:            "phone",
	KindNumber:           "number",
	KindDate:             "date",
	KindSelect:           "select",
	KindCheckboxGroup:    "checkbox-group",
	KindRadio:            "radio",
	KindRequiredCheckbox: "required-checkbox",
	KindTextarea:         "textarea",
}

// Kinds returns every recognised kind, KindNone excluded.
func Kinds() []Kind {
	return []Kind{
		KindText, KindEmail, KindPhone, KindNumber, KindDate, KindSelect,
		KindCheckboxGroup, KindRadio, KindRequiredCheckbox, KindTextarea,
	}
}

// ParseKind maps a kind tag to a Kind. Matching is case-insensitive and
// ignores surrounding whitespace; unknown tags yield KindNone.
func ParseKind(tag string) Kind {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return KindNone
	}
	for k, t := range kindTags {
		if t == tag {
			return k
		}
	}
	return KindNone
}

// String returns the kind tag.
func (k Kind) String() string {
	if t, ok := kindTags[k]; ok {
		return t
	}
	return ""
}

// IsGroup reports whether controls of this kind are validated per name
// rather than per control.
func (k Kind) IsGroup() bool {
	return k == KindCheckboxGroup || k == KindRadio
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	*k = ParseKind(string(b))
	return nil
}
