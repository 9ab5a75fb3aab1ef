package util

import (
	"errors"
	"testing"
)

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		8192:      "8192",
		12_345:    "12.3k",
		4_100_000: "4.1M",
		-20:       "-20",
	}
	for n, want := range cases {
		if got := FormatCount(n); got != want {
			t.Fatalf("FormatCount(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestFormatSample(t *testing.T) {
	if got := FormatSample(0.5); got != "+0.500" {
		t.Fatalf("expected +0.500, got %q", got)
	}
	if got := FormatSample(-0.25); got != "-0.250" {
		t.Fatalf("expected -0.250, got %q", got)
	}
}

func TestParseRange(t *testing.T) {
	lo, hi, err := ParseRange(" 10:2000 ")
	if err != nil || lo != 10 || hi != 2000 {
		t.Fatalf("expected 10:2000, got %d:%d (%v)", lo, hi, err)
	}
	lo, hi, err = ParseRange("5-1")
	if err != nil || lo != 5 || hi != 1 {
		t.Fatalf("expected 5-1 kept as given, got %d:%d (%v)", lo, hi, err)
	}
	lo, hi, err = ParseRange("-5:1")
	if err != nil || lo != -5 || hi != 1 {
		t.Fatalf("expected negative lower, got %d:%d (%v)", lo, hi, err)
	}
	for in, want := range map[string][2]int64{
		"-5-10":  {-5, 10},
		"-5--10": {-5, -10},
		"5--3":   {5, -3},
	} {
		lo, hi, err := ParseRange(in)
		if err != nil || lo != want[0] || hi != want[1] {
			t.Fatalf("ParseRange(%q): expected %d:%d, got %d:%d (%v)", in, want[0], want[1], lo, hi, err)
		}
	}
	for _, bad := range []string{"", "10", "-10", "a:b", "1:", "5-"} {
		if _, _, err := ParseRange(bad); !errors.Is(err, ErrBadRange) {
			t.Fatalf("ParseRange(%q): expected ErrBadRange, got %v", bad, err)
		}
	}
}
