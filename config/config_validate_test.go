package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

func validTestConfig() *Config {
	cfg := &Config{
		Postgres:    &postgres.DBConn{},
		GoogleOAuth: &GoogleOAuthConfig{ClientID: "client-id"},
		SMTP:        &SMTPConfig{Host: "smtp.example.com"},
	}
	cfg.SecretKey.AdminToken = "signing-secret"

	return cfg
}

func TestValidate_RefusesMissingAdminTokenSecret(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		cfg := validTestConfig()
		cfg.SecretKey.AdminToken = secret

		if err := validate(cfg); err == nil {
			t.Fatalf("validate accepted adminToken secret %q", secret)
		}
	}
}

func TestValidate_RefusesMissingPostgres(t *testing.T) {
	cfg := validTestConfig()
	cfg.Postgres = nil

	if err := validate(cfg); err == nil {
		t.Fatal("validate accepted missing postgres configuration")
	}
}

func TestValidate_RefusesMissingGoogleClientID(t *testing.T) {
	cfg := validTestConfig()
	cfg.GoogleOAuth = nil

	if err := validate(cfg); err == nil {
		t.Fatal("validate accepted missing googleOAuth configuration")
	}
}

func TestValidate_RefusesMissingSMTPHost(t *testing.T) {
	cfg := validTestConfig()
	cfg.SMTP.Host = ""

	if err := validate(cfg); err == nil {
		t.Fatal("validate accepted missing smtp host")
	}
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	if err := validate(validTestConfig()); err != nil {
		t.Fatalf("validate rejected a complete config: %v", err)
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := validTestConfig()
	applyAuthDefaults(cfg)

	if cfg.Auth.AdminTokenTTL != 24*time.Hour {
		t.Fatalf("adminTokenTtl default = %v", cfg.Auth.AdminTokenTTL)
	}
	if cfg.Auth.SessionTTL != 7*24*time.Hour {
		t.Fatalf("sessionTtl default = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.OTPTTL != 10*time.Minute {
		t.Fatalf("otpTtl default = %v", cfg.Auth.OTPTTL)
	}
}

func TestApplyAuthDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validTestConfig()
	cfg.Auth = &AuthConfig{
		AdminTokenTTL: time.Hour,
		SessionTTL:    48 * time.Hour,
		OTPTTL:        time.Minute,
	}
	applyAuthDefaults(cfg)

	if cfg.Auth.AdminTokenTTL != time.Hour || cfg.Auth.SessionTTL != 48*time.Hour || cfg.Auth.OTPTTL != time.Minute {
		t.Fatalf("defaults overwrote explicit values: %+v", cfg.Auth)
	}
}
