// ABOUTME: Label enum for categorizing notes.
// ABOUTME: Normalizes unknown or unset labels to "other".

package models

import "strings"

type Label string

const (
	LabelPersonal Label = "personal"
	LabelStudy    Label = "study"
	LabelWork     Label = "work"
	LabelOther    Label = "other"
)

// Labels lists every label in the order the creation form offers them.
var Labels = []Label{LabelPersonal, LabelStudy, LabelWork, LabelOther}

// ParseLabel matches s case-insensitively against the known labels.
func ParseLabel(s string) (Label, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Labels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func NormalizeLabel(l Label) Label {
	if parsed, ok := ParseLabel(string(l)); ok {
		return parsed
	}
	return LabelOther
}

// Next returns the label after l, wrapping around.
func (l Label) Next() Label {
	for i, candidate := range Labels {
		if candidate == l {
			return Labels[(i+1)%len(Labels)]
		}
	}
	return LabelOther
}

// Display returns the capitalized form used in selectors.
func (l Label) Display() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}
