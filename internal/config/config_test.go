package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AXANET_DATA_DIR", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BACKUP_BUCKET", "")
	t.Setenv("AXANET_CHECK_EMAIL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("API_PASSWORD_HASH", "")

	cfg := Load()

	if cfg.DataDir != DefaultDataDir {
		t.Fatalf("expected data dir %q, got %q", DefaultDataDir, cfg.DataDir)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr :8080, got %s", cfg.Addr())
	}
	if cfg.AuditEnabled() {
		t.Fatal("audit should be disabled without DATABASE_URL")
	}
	if cfg.BackupEnabled() {
		t.Fatal("backup should be disabled without BACKUP_BUCKET")
	}
	if cfg.CheckEmailDomain {
		t.Fatal("email domain check should be off by default")
	}
	if cfg.JWTSecret != "" || cfg.AuthEnabled() {
		t.Fatal("auth must stay disabled without JWT_SECRET and API_PASSWORD_HASH")
	}
}

func TestAuthEnabled_NeedsSecretAndHash(t *testing.T) {
	cases := []struct {
		secret, hash string
		want         bool
	}{
		{"", "", false},
		{"segredo", "", false},
		{"", "$2a$10$hash", false},
		{"segredo", "$2a$10$hash", true},
	}
	for _, tc := range cases {
		cfg := &Config{JWTSecret: tc.secret, APIPasswordHash: tc.hash}
		if got := cfg.AuthEnabled(); got != tc.want {
			t.Errorf("AuthEnabled(secret=%q, hash=%q) = %v, want %v", tc.secret, tc.hash, got, tc.want)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AXANET_DATA_DIR", "/tmp/clientes")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKUP_BUCKET", "axanet-backups")
	t.Setenv("AXANET_CHECK_EMAIL", "sí")

	cfg := Load()

	if cfg.DataDir != "/tmp/clientes" {
		t.Fatalf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %s", cfg.Addr())
	}
	if !cfg.BackupEnabled() {
		t.Fatal("backup should be enabled")
	}
	if !cfg.CheckEmailDomain {
		t.Fatal("email domain check should be on")
	}
}
