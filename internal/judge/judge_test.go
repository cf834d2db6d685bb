package judge

import "testing"

func TestVerdictTerminal(t *testing.T) {
	for _, v := range Verdicts() {
		want := v != Processing && v != InQueue
		if got := v.Terminal(); got != want {
			t.Errorf("%s: Terminal() = %v, want %v", v, got, want)
		}
	}
}

func TestVerdictLabels(t *testing.T) {
	cases := map[Verdict]string{
		Accepted:    "Accepted",
		InQueue:     "In queue",
		WrongAnswer: "Wrong answer",
		Verdict(99): "Verdict(99)",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("Verdict(%d).String() = %q, want %q", int(v), got, want)
		}
	}
}

func TestLanguageCodes(t *testing.T) {
	want := map[Language]int{C: 1, Java: 2, CPP: 3, Pascal: 4, CPP11: 5, Python: 6}
	for l, code := range want {
		if int(l) != code {
			t.Errorf("%s has code %d, want %d", l, int(l), code)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"5", CPP11},
		{"C++11", CPP11},
		{"cpp", CPP},
		{"java", Java},
		{" Python ", Python},
		{"1", C},
	}
	for _, tc := range cases {
		got, err := ParseLanguage(tc.in)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"7", "0", "rust", ""} {
		if _, err := ParseLanguage(bad); err == nil {
			t.Errorf("ParseLanguage(%q): expected error", bad)
		}
	}
}
