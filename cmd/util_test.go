package cmd

import (
	"reflect"
	"testing"
)

func TestReorderArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "positional before flags",
			in:   []string{"plymouth", "--csv", "out.csv"},
			want: []string{"--csv", "out.csv", "plymouth"},
		},
		{
			name: "flags only",
			in:   []string{"--sort", "rate", "--county", "Essex"},
			want: []string{"--sort", "rate", "--county", "Essex"},
		},
		{
			name: "equals form keeps next positional",
			in:   []string{"--sort=rate", "plymouth"},
			want: []string{"--sort=rate", "plymouth"},
		},
		{
			name: "double dash ends flag parsing",
			in:   []string{"--csv", "out.csv", "--", "--weird-name"},
			want: []string{"--csv", "out.csv", "--weird-name"},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		got := reorderArgs(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: reorderArgs(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45678, "-45,678"},
	}
	for _, tt := range tests {
		if got := formatInt(tt.in); got != tt.want {
			t.Errorf("formatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42"},
		{1500, "2k"},
		{2500000, "2.5M"},
	}
	for _, tt := range tests {
		if got := formatCompact(tt.in); got != tt.want {
			t.Errorf("formatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := bar(10, 10, 20); len([]rune(got)) != 20 {
		t.Errorf("full bar = %q", got)
	}
	if got := bar(0, 10, 20); got != "" {
		t.Errorf("zero bar = %q", got)
	}
	if got := bar(0.1, 100, 20); len([]rune(got)) != 1 {
		t.Errorf("minimum bar = %q", got)
	}
	if got := bar(5, 0, 20); got != "" {
		t.Errorf("zero max = %q", got)
	}
}
