package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("POKEDEX_TEST_STRING", "")
	if got := envOrDefault("POKEDEX_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}

	t.Setenv("POKEDEX_TEST_STRING", "value")
	if got := envOrDefault("POKEDEX_TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{name: "unset", raw: "", want: 151},
		{name: "valid", raw: "42", want: 42},
		{name: "garbage", raw: "lots", want: 151},
		{name: "zero rejected", raw: "0", want: 151},
		{name: "negative rejected", raw: "-5", want: 151},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POKEDEX_TEST_INT", tc.raw)
			if got := intEnvOrDefault("POKEDEX_TEST_INT", 151); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "unset", raw: "", want: time.Hour},
		{name: "valid", raw: "90s", want: 90 * time.Second},
		{name: "garbage", raw: "soon", want: time.Hour},
		{name: "non-positive rejected", raw: "-1m", want: time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POKEDEX_TEST_DURATION", tc.raw)
			if got := durationEnvOrDefault("POKEDEX_TEST_DURATION", time.Hour); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "unset", raw: "", want: false},
		{name: "one", raw: "1", want: true},
		{name: "true mixed case", raw: "True", want: true},
		{name: "yes", raw: "yes", want: true},
		{name: "zero", raw: "0", want: false},
		{name: "false", raw: "false", want: false},
		{name: "garbage keeps default", raw: "maybe", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POKEDEX_TEST_BOOL", tc.raw)
			if got := boolEnvOrDefault("POKEDEX_TEST_BOOL", false); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
