// core/splice/labels_test.go
package splice

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseLabelsDropsHeaderAndKeepsOrder(t *testing.T) {
	in := "ts,x\n100,a\n200,b\n300,c\n"
	got, err := ParseLabels(strings.NewReader(in), ',')
	if err != nil {
		t.Fatalf("ParseLabels: %v", err)
	}
	want := []string{"100", "200", "300"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
}

func TestParseLabelsLineWithoutDelimiter(t *testing.T) {
	in := "header\nwholeline\n42,x\n\n"
	got, err := ParseLabels(strings.NewReader(in), ',')
	if err != nil {
		t.Fatalf("ParseLabels: %v", err)
	}
	// No delimiter: the whole line is the label. Empty line: empty label.
	want := []string{"wholeline", "42", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
}

func TestParseLabelsEmptyAndHeaderOnly(t *testing.T) {
	for _, in := range []string{"", "ts,x\n", "ts,x"} {
		got, err := ParseLabels(strings.NewReader(in), ',')
		if err != nil {
			t.Fatalf("ParseLabels(%q): %v", in, err)
		}
		if len(got) != 0 {
			t.Fatalf("ParseLabels(%q) = %v, want none", in, got)
		}
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {
	if _, err := LoadLabels("no-such-filter.csv", ','); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
// ===
