package viewer

import (
	"strings"
	"testing"
)

func TestFormatForDisplay_HighlightsHeading(t *testing.T) {
	got := FormatForDisplay("Detailed Analysis: ok")
	want := headingOpen + "Detailed Analysis:</span> ok"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatForDisplay_CaseInsensitivePreservesCasing(t *testing.T) {
	got := FormatForDisplay("detailed analysis: lungs clear\nTREATMENT SUGGESTION: rest")
	if !strings.Contains(got, headingOpen+"detailed analysis:</span>") {
		t.Errorf("lowercase heading not highlighted: %q", got)
	}
	if !strings.Contains(got, headingOpen+"TREATMENT SUGGESTION:</span>") {
		t.Errorf("uppercase heading not highlighted: %q", got)
	}
}

func TestFormatForDisplay_AllOccurrences(t *testing.T) {
	got := FormatForDisplay("Findings Report: a\nFindings Report: b")
	if n := strings.Count(got, headingOpen); n != 2 {
		t.Errorf("expected 2 highlights, got %d in %q", n, got)
	}
}

func TestFormatForDisplay_ColonIsLiteral(t *testing.T) {
	got := FormatForDisplay("Findings Report- none")
	if strings.Contains(got, headingOpen) {
		t.Errorf("heading without colon must not be highlighted: %q", got)
	}
}

func TestFormatForDisplay_NoRawNewlines(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"a\nb",
		"a\r\nb",
		"\n\nDetailed Analysis:\n\nRecommendation and Next Steps:\n",
		"line\rline",
	}
	for _, in := range inputs {
		got := FormatForDisplay(in)
		if strings.ContainsAny(got, "\n\r") {
			t.Errorf("raw newline left in %q -> %q", in, got)
		}
	}
	if got := FormatForDisplay("a\r\nb"); got != "a<br>b" {
		t.Errorf("CRLF should become a single break, got %q", got)
	}
}

// Formatting the plain text recovered from formatted output reproduces the
// same markup.
func TestFormatForDisplay_StableUnderReformat(t *testing.T) {
	inputs := []string{
		"Detailed Analysis: ok",
		"Detailed Analysis: the patient's scan\nFindings Report: none\n\nTreatment Suggestion: rest",
		"Findings Report: size<5cm & margins clear",
		"no headings at all",
	}
	for _, in := range inputs {
		once := FormatForDisplay(in)
		again := FormatForDisplay(PlainText(once))
		if once != again {
			t.Errorf("reformat changed output for %q:\n once  %q\n again %q", in, once, again)
		}
	}
}

func TestFormatForDisplay_EscapesMarkup(t *testing.T) {
	got := FormatForDisplay(`<script>alert(1)</script><img src=x onerror=alert(1)>Findings Report: fine`)
	for _, bad := range []string{"<script", "<img"} {
		if strings.Contains(got, bad) {
			t.Errorf("markup %q survived: %q", bad, got)
		}
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("markup should be shown as text: %q", got)
	}
	if !strings.Contains(got, headingOpen+"Findings Report:</span> fine") {
		t.Errorf("heading lost after escaping: %q", got)
	}
}

func TestFormatForDisplay_KeepsAngleBracketsInProse(t *testing.T) {
	in := "Findings Report: nodule <normal limits\nTreatment Suggestion: none needed"
	got := FormatForDisplay(in)
	want := headingOpen + "Findings Report:</span> nodule &lt;normal limits<br>" +
		headingOpen + "Treatment Suggestion:</span> none needed"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = FormatForDisplay("LDL <b 100 mg/dL> fine")
	if got != "LDL &lt;b 100 mg/dL&gt; fine" {
		t.Errorf("tag-like text was altered: %q", got)
	}
}

func TestPlainText(t *testing.T) {
	inputs := []string{
		"Detailed Analysis: it's fine\nConsult with a doctor before making any decisions.",
		"a <b c",
		"Findings Report: size<5cm & margins\nTreatment Suggestion: \"watchful\" waiting",
		"LDL <b 100 mg/dL> fine",
		"literal &amp; stays literal",
	}
	for _, in := range inputs {
		if got := PlainText(FormatForDisplay(in)); got != in {
			t.Errorf("round trip: got %q, want %q", got, in)
		}
	}
}
