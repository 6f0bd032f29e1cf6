package outfmt

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON_Indents(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]string{"id": "7"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := buf.String(); got != "{\n  \"id\": \"7\"\n}\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestWriteJSONFiltered_AppliesQuery(t *testing.T) {
	type msg struct {
		ID      string `json:"id"`
		Subject string `json:"subject"`
	}

	var buf bytes.Buffer
	err := WriteJSONFiltered(&buf, []msg{{ID: "1", Subject: "a"}, {ID: "2", Subject: "b"}}, ".[].id")
	if err != nil {
		t.Fatalf("WriteJSONFiltered: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"1"`) || !strings.Contains(out, `"2"`) {
		t.Errorf("query result missing ids: %q", out)
	}
	if strings.Contains(out, "subject") {
		t.Errorf("query should have projected ids only: %q", out)
	}
}

func TestWriteJSONFiltered_EmptyQueryPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONFiltered(&buf, map[string]int{"n": 3}, ""); err != nil {
		t.Fatalf("WriteJSONFiltered: %v", err)
	}
	if !strings.Contains(buf.String(), `"n": 3`) {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWriteJSONFiltered_BadQuery(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONFiltered(&buf, map[string]int{}, ".foo |"); err == nil {
		t.Error("expected error for unparsable query")
	}
}

func TestSanitizeTab(t *testing.T) {
	if got := SanitizeTab("a\tb\tc"); got != "a b c" {
		t.Errorf("SanitizeTab = %q", got)
	}
}
