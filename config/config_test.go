package config

import "testing"

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_CONNECTION_STRING", "")
	t.Setenv("DEGREE_AUDIT_DB", "")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ceilings := cfg.Ceilings()
	if ceilings.First != 17 || ceilings.Default != 19 {
		t.Errorf("expected 17/19, got %+v", ceilings)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("DEGREE_AUDIT_DB", "/tmp/catalog.db")
	t.Setenv("DEGREE_AUDIT_FIRST_TERM_CEILING", "15")
	t.Setenv("DEGREE_AUDIT_TERM_CEILING", "18.5")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.SQLitePath != "/tmp/catalog.db" {
		t.Errorf("expected sqlite path, got %q", cfg.SQLitePath)
	}
	if cfg.FirstTermCeiling != 15 || cfg.TermCeiling != 18.5 {
		t.Errorf("unexpected ceilings %v/%v", cfg.FirstTermCeiling, cfg.TermCeiling)
	}
}

func TestParseEnvRejectsBadCeiling(t *testing.T) {
	t.Setenv("DEGREE_AUDIT_TERM_CEILING", "lots")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric ceiling")
	}

	t.Setenv("DEGREE_AUDIT_TERM_CEILING", "-1")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for negative ceiling")
	}
}
