package services

import (
	"os"
	"strings"
	"testing"
)

func TestSendPasswordResetEmailWithoutConfig(t *testing.T) {
	for _, key := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "FROM_EMAIL"} {
		os.Unsetenv(key)
	}

	// Sin configuración SMTP el flujo no falla, solo registra el token
	if err := SendPasswordResetEmail("agus@example.com", "token-123"); err != nil {
		t.Errorf("error inesperado: %v", err)
	}
}

func TestLoadSMTPConfigFromFallback(t *testing.T) {
	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_PORT", "587")
	os.Setenv("SMTP_USER", "noreply@example.com")
	os.Setenv("SMTP_PASS", "secreto")
	os.Unsetenv("FROM_EMAIL")
	defer func() {
		for _, key := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS"} {
			os.Unsetenv(key)
		}
	}()

	config, ok := loadSMTPConfig()
	if !ok {
		t.Fatal("la configuración debería estar completa")
	}
	// Sin FROM_EMAIL el remitente es el usuario SMTP
	if config.From != "noreply@example.com" {
		t.Errorf("From = %s, se esperaba noreply@example.com", config.From)
	}

	os.Unsetenv("SMTP_PASS")
	if _, ok := loadSMTPConfig(); ok {
		t.Error("la configuración debería estar incompleta sin SMTP_PASS")
	}
}

func TestBuildPasswordResetMessage(t *testing.T) {
	message := string(buildPasswordResetMessage("noreply@example.com", "agus@example.com", "token-123"))

	for _, expected := range []string{
		"From: noreply@example.com",
		"To: agus@example.com",
		"Subject: Restablecimiento de contraseña - Crypto Assets",
		"Content-Type: text/html; charset=UTF-8",
		"<strong>token-123</strong>",
	} {
		if !strings.Contains(message, expected) {
			t.Errorf("el mensaje debería contener %q", expected)
		}
	}
}
