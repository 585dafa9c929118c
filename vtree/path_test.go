package vtree

import "testing"

func configTree() *Tree {
	t := New()
	servers := t.Sub("servers")
	s0 := New()
	s0.Sub("host").CoerceValue().SetString("db1")
	s0.Sub("port").CoerceValue().SetNumber(5432)
	s0.Sub("replica").CoerceValue().SetBool(false)
	servers.Append(s0)
	t.Sub("weird.key").CoerceValue().SetNone()
	return t
}

func TestAt(t *testing.T) {
	tr := configTree()
	tests := []struct {
		name string
		segs []Seg
		hit  bool
	}{
		{"object-array-object", []Seg{Key("servers"), Index(0), Key("host")}, true},
		{"missing-key", []Seg{Key("nope")}, false},
		{"index-out-of-range", []Seg{Key("servers"), Index(1)}, false},
		{"negative-index", []Seg{Key("servers"), Index(-1)}, false},
		{"key-into-array", []Seg{Key("servers"), Key("host")}, false},
		{"index-into-object", []Seg{Index(0)}, false},
		{"root", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.At(tt.segs...)
			if (got != nil) != tt.hit {
				t.Errorf("At(%v) hit = %v, want %v", tt.segs, got != nil, tt.hit)
			}
		})
	}
}

func TestTypedAt(t *testing.T) {
	tr := configTree()
	if s, ok := tr.StringAt(Key("servers"), Index(0), Key("host")); !ok || s != "db1" {
		t.Errorf("StringAt = %q, %v", s, ok)
	}
	if n, ok := tr.NumberAt(Key("servers"), Index(0), Key("port")); !ok || n != 5432 {
		t.Errorf("NumberAt = %v, %v", n, ok)
	}
	if b, ok := tr.BoolAt(Key("servers"), Index(0), Key("replica")); !ok || b {
		t.Errorf("BoolAt = %v, %v", b, ok)
	}
	if !tr.NoneAt(Key("weird.key")) {
		t.Error("NoneAt should hit the null member")
	}
	// kind mismatch fails
	if _, ok := tr.StringAt(Key("servers"), Index(0), Key("port")); ok {
		t.Error("StringAt on a Number should fail")
	}
	// non-scalar fails
	if _, ok := tr.NumberAt(Key("servers")); ok {
		t.Error("NumberAt on an Array should fail")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in      string
		want    []Seg
		wantErr bool
	}{
		{in: "$", want: nil},
		{in: "$.a.b", want: []Seg{Key("a"), Key("b")}},
		{in: "$.servers[0].host", want: []Seg{Key("servers"), Index(0), Key("host")}},
		{in: "$['weird.key']", want: []Seg{Key("weird.key")}},
		{in: `$['it\'s']`, want: []Seg{Key("it's")}},
		{in: "$[10][2]", want: []Seg{Index(10), Index(2)}},
		{in: "", wantErr: true},
		{in: "a.b", wantErr: true},
		{in: "$.", wantErr: true},
		{in: "$..a", wantErr: true},
		{in: "$[x]", wantErr: true},
		{in: "$[-1]", wantErr: true},
		{in: "$[1", wantErr: true},
		{in: "$['open", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePath(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("seg %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
