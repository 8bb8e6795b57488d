package types

import (
	"strings"
	"testing"
)

func TestReport_Rejections(t *testing.T) {
	report := Report{
		{Field: "artist", Action: ActionRemoved, Before: StringValue("Unknown"), Reason: ReasonExcluded},
		{Field: "tracknumber", Action: ActionRejected, Before: IntValue(150), After: IntValue(150), Reason: string(RejectAboveMax)},
		{Field: "title", Action: ActionFormatted, Before: StringValue(" a "), After: StringValue("a"), Reason: ReasonFormatRule},
	}

	rejections := report.Rejections()
	if len(rejections) != 1 {
		t.Fatalf("Rejections() = %d entries, want 1", len(rejections))
	}
	if rejections[0].Field != "tracknumber" {
		t.Errorf("rejection field = %s", rejections[0].Field)
	}
}

func TestReport_ByField(t *testing.T) {
	report := Report{
		{Field: "title", Action: ActionFormatted, Reason: ReasonFormatRule},
		{Field: "title", Action: ActionFiltered, Reason: ReasonCharFilter},
		{Field: "album", Action: ActionRemoved, Reason: ReasonExcluded},
	}

	// Lookup is case-insensitive like everything else.
	if got := report.ByField("TITLE"); len(got) != 2 {
		t.Errorf("ByField(TITLE) = %d entries, want 2", len(got))
	}
}

func TestReport_Empty(t *testing.T) {
	if !(Report{}).Empty() {
		t.Error("empty report should be Empty()")
	}
	if (Report{{Field: "x"}}).Empty() {
		t.Error("non-empty report should not be Empty()")
	}
}

func TestChange_String(t *testing.T) {
	removed := Change{Field: "artist", Action: ActionRemoved, Before: StringValue("Unknown Artist"), Reason: ReasonExcluded}
	if got := removed.String(); !strings.Contains(got, "removed") || !strings.Contains(got, "excluded") {
		t.Errorf("removed change rendered as %q", got)
	}

	formatted := Change{Field: "title", Action: ActionFormatted, Before: StringValue(" a "), After: StringValue("a"), Reason: ReasonFormatRule}
	if got := formatted.String(); !strings.Contains(got, `" a "`) || !strings.Contains(got, `"a"`) {
		t.Errorf("formatted change rendered as %q", got)
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Section: "fields_spec", Field: "tracknumber", Reason: "type must be \"str\" or \"int\""}
	got := err.Error()
	if !strings.Contains(got, "fields_spec.tracknumber") {
		t.Errorf("Error() = %q, want section.field context", got)
	}
}
