package client

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Ana Ruiz":       "ana_ruiz",
		"ana ruiz":       "ana_ruiz",
		"José  María":    "josé__maría",
		"BETO":           "beto",
		"already_normal": "already_normal",
		"Ana\tRuiz":      "ana\truiz",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	names := []string{"Ana Ruiz", "  Beto  ", "ÁLVARO de la Cruz", "x", "a_b c_D"}
	for _, n := range names {
		once := Normalize(n)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", n, once, twice)
		}
	}
}

func TestGenerateClientID(t *testing.T) {
	now := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := GenerateClientID("Ana Ruiz", now); got != "ana_ruiz_20250307" {
		t.Fatalf("unexpected client id %q", got)
	}
}

func TestFileNameRoundTrip(t *testing.T) {
	key, ok := KeyFromFileName(FileName("ana_ruiz"))
	if !ok || key != "ana_ruiz" {
		t.Fatalf("expected ana_ruiz, got %q (ok=%v)", key, ok)
	}
	if _, ok := KeyFromFileName("notes.md"); ok {
		t.Fatal("non .txt files must be ignored")
	}
	if _, ok := KeyFromFileName(".txt"); ok {
		t.Fatal("empty key must be ignored")
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"ana_ruiz":   "Ana Ruiz",
		"beto":       "Beto",
		"josé_maría": "José María",
		"o'neil":     "O'neil",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidKey(t *testing.T) {
	valid := []string{"ana_ruiz", "josé__maría", "o'neil", "..ana", "a.b"}
	for _, k := range valid {
		if !ValidKey(k) {
			t.Errorf("ValidKey(%q) = false, want true", k)
		}
	}

	invalid := []string{"", ".", "..", "../escaped", "a/b", `a\b`, "/etc/passwd", "a\x00b"}
	for _, k := range invalid {
		if ValidKey(k) {
			t.Errorf("ValidKey(%q) = true, want false", k)
		}
	}
}
