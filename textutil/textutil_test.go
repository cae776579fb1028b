package textutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines_SingleLineWithoutBreak(t *testing.T) {
	got := Lines("single line")
	if diff := cmp.Diff([]string{"single line"}, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_SupportsAllBreakSequences(t *testing.T) {
	got := Lines("line 1\nline 2\r\nline 3\rline 4")
	want := []string{"line 1", "line 2", "line 3", "line 4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_EmptyInput(t *testing.T) {
	if got := Lines(""); len(got) != 0 {
		t.Errorf("Lines(\"\") = %q, want no lines", got)
	}
}

func TestLines_TrailingNewlineInsensitive(t *testing.T) {
	with := Lines("x\ny\n")
	without := Lines("x\ny")
	if diff := cmp.Diff(without, with); diff != "" {
		t.Errorf("trailing newline changed the parse (-without +with):\n%s", diff)
	}
}

func TestLines_DoubledTerminatorKeepsEmptyLine(t *testing.T) {
	got := Lines("x\n\n")
	want := []string{"x", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_DoesNotTrimWhitespace(t *testing.T) {
	got := Lines("a  \n  b")
	want := []string{"a  ", "  b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
	if got := Join([]string{"a", "b", "c"}); got != "a\nb\nc" {
		t.Errorf("Join() = %q", got)
	}
}

func TestTrimLines_KeepsNonBlankLines(t *testing.T) {
	got := TrimLines([]string{"1", "2", "3"})
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Errorf("TrimLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrimLines_DropsBlankEdges(t *testing.T) {
	got := TrimLines([]string{"", "  ", "\t", "first", "second", "", " "})
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Errorf("TrimLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrimLines_TrimsLineEndsOnly(t *testing.T) {
	got := TrimLines([]string{"l1  ", "l2\t", " l3 "})
	if diff := cmp.Diff([]string{"l1", "l2", " l3"}, got); diff != "" {
		t.Errorf("TrimLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrimLines_KeepsInteriorBlanks(t *testing.T) {
	in := []string{"1x", "", "2x", "", "", "3x"}
	got := TrimLines(in)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("TrimLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDedent_EmptyString(t *testing.T) {
	if got := Dedent(""); got != "" {
		t.Errorf("Dedent(\"\") = %q", got)
	}
}

func TestDedent_RemovesBlankEdges(t *testing.T) {
	if got := Dedent("\n \n  \ntext\n\n \n  \n"); got != "text" {
		t.Errorf("Dedent() = %q, want %q", got, "text")
	}
}

func TestDedent_StripsFirstLineIndent(t *testing.T) {
	got := Dedent("\n  l1\n\n    l2\n  l3\n")
	want := "l1\n\n  l2\nl3"
	if got != want {
		t.Errorf("Dedent() = %q, want %q", got, want)
	}
}

func TestNFC_ComposesDecomposedRunes(t *testing.T) {
	// "é" as 'e' + combining acute vs the precomposed code point.
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"
	got := NFC([]string{decomposed})
	if diff := cmp.Diff([]string{composed}, got); diff != "" {
		t.Errorf("NFC() mismatch (-want +got):\n%s", diff)
	}
}
