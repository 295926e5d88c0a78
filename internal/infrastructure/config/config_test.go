package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ATTACHMENT_MAX_BYTES", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.AttachmentMaxBytes != 50<<20 {
		t.Fatalf("expected 50MiB limit, got %d", cfg.AttachmentMaxBytes)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("expected mock disabled")
	}
	if cfg.Tables.Prostheses != "protesis" {
		t.Fatalf("unexpected table name %q", cfg.Tables.Prostheses)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ATTACHMENT_MAX_BYTES", "1024")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("PROSTHESES_TABLE", "protesis_dev")

	cfg := Load()
	if cfg.Port != 9090 || cfg.AttachmentMaxBytes != 1024 || !cfg.PaymentGatewayMock {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Tables.Prostheses != "protesis_dev" {
		t.Fatalf("unexpected table name %q", cfg.Tables.Prostheses)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	if cfg := Load(); cfg.Port != 8080 {
		t.Fatalf("expected fallback port, got %d", cfg.Port)
	}
}
