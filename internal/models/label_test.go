// ABOUTME: Tests for Label parsing and cycling.
// ABOUTME: Validates case-insensitive matching and wrap-around.

package models

import "testing"

func TestParseLabel(t *testing.T) {
	l, ok := ParseLabel("  WORK ")
	if !ok || l != LabelWork {
		t.Errorf("expected work, got %q (ok=%v)", l, ok)
	}

	if _, ok := ParseLabel("errands"); ok {
		t.Error("expected unknown label to fail")
	}
}

func TestLabelNext(t *testing.T) {
	if LabelPersonal.Next() != LabelStudy {
		t.Error("expected personal -> study")
	}
	if LabelOther.Next() != LabelPersonal {
		t.Error("expected other to wrap to personal")
	}
}

func TestLabelDisplay(t *testing.T) {
	if LabelStudy.Display() != "Study" {
		t.Errorf("expected Study, got %q", LabelStudy.Display())
	}
}
