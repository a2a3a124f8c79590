package term

import (
	"bytes"
	"testing"
)

func TestClip(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a long lexeme", 8, "a lon..."},
		{"tiny", 3, "tiny"},
	}
	for _, c := range cases {
		if got := Clip(c.in, c.n); got != c.want {
			t.Fatalf("Clip(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestOneLine(t *testing.T) {
	if got := OneLine("a\nb\tc"); got != `a\nb\tc` {
		t.Fatalf("OneLine = %q", got)
	}
}

func TestPlainStylesLeaveTextAlone(t *testing.T) {
	st := Plain()
	if got := Paint(st.Error, "error[LEX0001]"); got != "error[LEX0001]" {
		t.Fatalf("plain paint = %q", got)
	}
	if got := Paint(st.Error, ""); got != "" {
		t.Fatalf("empty paint = %q", got)
	}
	var buf bytes.Buffer
	if got := Paint(NewStyles(&buf, ColorNever).Kind, "NUMBER"); got != "NUMBER" {
		t.Fatalf("never mode painted %q", got)
	}
}

func TestAlwaysColours(t *testing.T) {
	var buf bytes.Buffer
	got := Paint(NewStyles(&buf, ColorAlways).Error, "error")
	if got == "error" || !bytes.Contains([]byte(got), []byte("\x1b[")) {
		t.Fatalf("always mode left text unstyled: %q", got)
	}
}
