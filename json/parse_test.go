package json

import (
	"strings"
	"testing"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/vtree"
)

// capture collects logger output for assertions.
type capture struct {
	errs  []string
	warns []string
	infos []string
}

func (c *capture) logger() c2p.Logger {
	return c2p.CallbackLogger{
		OnError:   func(m string) { c.errs = append(c.errs, m) },
		OnWarning: func(m string) { c.warns = append(c.warns, m) },
		OnInfo:    func(m string) { c.infos = append(c.infos, m) },
	}
}

func TestParseDocument(t *testing.T) {
	var cap capture
	tree := Parse(`{
	// connection settings
	"host": "db1",
	"port": +5432,
	"tags": ["a", "b",],
	"limits": {"max": 1.5e3, "min": -0.5},
	"tls": true,
	"proxy": null,
}`, cap.logger())
	if len(cap.errs) != 0 {
		t.Fatalf("unexpected errors: %v", cap.errs)
	}
	if got, _ := tree.StringAt(vtree.Key("host")); got != "db1" {
		t.Errorf("host = %q", got)
	}
	if got, _ := tree.NumberAt(vtree.Key("port")); got != 5432 {
		t.Errorf("port = %v", got)
	}
	if got, _ := tree.StringAt(vtree.Key("tags"), vtree.Index(1)); got != "b" {
		t.Errorf("tags[1] = %q", got)
	}
	if tree.At(vtree.Key("tags")).Len() != 2 {
		t.Errorf("trailing comma should not add an element")
	}
	if got, _ := tree.NumberAt(vtree.Key("limits"), vtree.Key("max")); got != 1500 {
		t.Errorf("limits.max = %v", got)
	}
	if got, _ := tree.BoolAt(vtree.Key("tls")); !got {
		t.Error("tls should be true")
	}
	if !tree.NoneAt(vtree.Key("proxy")) {
		t.Error("proxy should be null")
	}
}

func TestParseScalarsAtTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want *vtree.Tree
	}{
		{`"x"`, vtree.FromString("x")},
		{`true`, vtree.FromBool(true)},
		{`false`, vtree.FromBool(false)},
		{`null`, vtree.Null()},
		{`-12.5`, vtree.FromNumber(-12.5)},
		{`+3`, vtree.FromNumber(3)},
		{`0.25e-1`, vtree.FromNumber(0.025)},
		{`[]`, vtree.New().CoerceArray()},
		{`{}`, vtree.New().CoerceObject()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var cap capture
			got := Parse(tt.in, cap.logger())
			if len(cap.errs) != 0 {
				t.Fatalf("errors: %v", cap.errs)
			}
			if !vtree.Equal(tt.want, got) {
				t.Errorf("Parse(%q) state=%v", tt.in, got.State())
			}
		})
	}
}

func TestParseStringEscapes(t *testing.T) {
	var cap capture
	tree := Parse(`"a@b\U0001F600\t\"\\\/"`, cap.logger())
	if len(cap.errs) != 0 {
		t.Fatalf("errors: %v", cap.errs)
	}
	sc, ok := tree.Value()
	if !ok {
		t.Fatalf("state = %v", tree.State())
	}
	if got := sc.String(); got != "a@b\U0001F600\t\"\\/" {
		t.Errorf("decoded = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantPos string // expected prefix of the first error
	}{
		{"empty-input", "", "cannot parse an empty document"},
		{"bare-garbage", "?", "line:1:1"},
		{"missing-value", `{"a":}`, "line:1:6"},
		{"missing-colon", `{"a" 1}`, "line:1:6"},
		{"bad-literal", `tru`, "line:1:1"},
		{"unterminated-object", `{"a":1`, "line:1:1"},
		{"unterminated-array", "[1,\n2", "line:1:1"},
		{"string-across-lines", "\"ab\ncd\"", "line:1:1"},
		{"bad-escape", `"a\q"`, "line:1:1"},
		{"short-unicode-escape", `"\u00"`, "line:1:1"},
		{"malformed-number", `01`, "line:1:1"},
		{"double-sign", `+-1`, "line:1:1"},
		{"missing-comma", `[1 2]`, "line:1:4"},
		{"value-at-eof", `[1,`, "expected a value at end of input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cap capture
			tree := Parse(tt.in, cap.logger())
			if !tree.IsEmpty() {
				t.Errorf("tree should be Empty on error, got %v", tree.State())
			}
			if len(cap.errs) == 0 {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(cap.errs[0], tt.wantPos) {
				t.Errorf("error = %q, want prefix %q", cap.errs[0], tt.wantPos)
			}
		})
	}
}

func TestParseErrorCarriesExcerpt(t *testing.T) {
	var cap capture
	Parse("{\n  \"a\": ?\n}", cap.logger())
	if len(cap.errs) != 1 {
		t.Fatalf("errors: %v", cap.errs)
	}
	lines := strings.Split(cap.errs[0], "\n")
	if len(lines) != 3 {
		t.Fatalf("error should be message + two excerpt lines: %q", cap.errs[0])
	}
	if !strings.HasPrefix(lines[0], "line:2:8:") {
		t.Errorf("position = %q", lines[0])
	}
	if lines[1] != ` |   "a": ?` {
		t.Errorf("context = %q", lines[1])
	}
	if lines[2] != " |        ^" {
		t.Errorf("caret = %q", lines[2])
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	var cap capture
	tree := Parse(`{"a":1} tail`, cap.logger())
	if len(cap.errs) != 0 {
		t.Fatalf("trailing content must not be an error: %v", cap.errs)
	}
	if len(cap.warns) != 1 || !strings.HasPrefix(cap.warns[0], "line:1:9") {
		t.Errorf("warnings = %v", cap.warns)
	}
	if got, _ := tree.NumberAt(vtree.Key("a")); got != 1 {
		t.Error("tree must be kept despite the warning")
	}
}

func TestParseDepthLimit(t *testing.T) {
	var cap capture
	in := strings.Repeat("[", MaxDepth+1)
	tree := Parse(in, cap.logger())
	if !tree.IsEmpty() || len(cap.errs) == 0 {
		t.Fatal("exceeding the nesting limit must fail the parse")
	}
	if !strings.Contains(cap.errs[0], "nesting") {
		t.Errorf("error = %q", cap.errs[0])
	}

	// one level below the limit parses
	cap = capture{}
	ok := strings.Repeat("[", MaxDepth-1) + strings.Repeat("]", MaxDepth-1)
	if tree := Parse(ok, cap.logger()); tree.IsEmpty() || len(cap.errs) != 0 {
		t.Errorf("depth below the limit should parse: %v", cap.errs)
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	var cap capture
	tree := Parse(`{"k":1,"k":2}`, cap.logger())
	if got, _ := tree.NumberAt(vtree.Key("k")); got != 2 {
		t.Errorf("k = %v", got)
	}
}

func TestParseNilLogger(t *testing.T) {
	// must not panic
	if tree := Parse(`{"a":[1]}`, nil); tree.IsEmpty() {
		t.Error("parse with nil logger failed")
	}
	Parse(`?`, nil)
}
