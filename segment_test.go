package sqlgram

import "testing"

func TestSegment_ConstantPhrase(t *testing.T) {
	groupBy := NewSegment(Keyword("GROUP"), Keyword("BY"))
	if groupBy.Len() != 2 {
		t.Errorf("Len = %d, want 2", groupBy.Len())
	}
	if got := Render(groupBy); got != "GROUP BY" {
		t.Errorf("Render = %q, want %q", got, "GROUP BY")
	}
}

func TestSegment_Empty(t *testing.T) {
	empty := NewSegment()
	if got := Render(empty); got != "" {
		t.Errorf("Render = %q, want empty", got)
	}
	if got := Render(Join(Identifier("a"), empty, Identifier("b"))); got != "a b" {
		t.Errorf("Render = %q, want %q", got, "a b")
	}
}

func TestSegment_SharedValueEqualsFresh(t *testing.T) {
	fresh := NewSegment(Joiner, Punctuation(","))
	shared := Comma
	if !tokensEqual(Collect(fresh), Collect(shared)) {
		t.Error("fresh and shared comma segments yield different streams")
	}
}

func TestSegment_CanonicalSeparators(t *testing.T) {
	cases := []struct {
		name string
		sep  Segment
		want string
	}{
		{"comma", Comma, "a, b"},
		{"dot", Dot, "a.b"},
		{"semicolon", Semicolon, "a; b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq := JoinSeparated(tc.sep, Identifier("a"), Identifier("b"))
			if got := Render(seq); got != tc.want {
				t.Errorf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSegment_InputSliceNotAliased(t *testing.T) {
	toks := []Token{Keyword("NOT"), Keyword("NULL")}
	seg := NewSegment(toks...)
	toks[0] = Keyword("IS")
	if got := Render(seg); got != "NOT NULL" {
		t.Errorf("Render = %q, want %q", got, "NOT NULL")
	}
}
