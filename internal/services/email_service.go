package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// Configuración de correo tomada de las variables de entorno
type smtpConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// loadSMTPConfig carga la configuración SMTP. Devuelve false si falta
// algún dato obligatorio. Si no hay remitente configurado se usa el
// usuario SMTP.
func loadSMTPConfig() (smtpConfig, bool) {
	config := smtpConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("FROM_EMAIL"),
	}

	if config.From == "" {
		config.From = config.User
	}

	if config.Host == "" || config.Port == "" || config.User == "" || config.Pass == "" {
		return config, false
	}
	return config, true
}

// buildPasswordResetMessage arma el correo de restablecimiento de
// contraseña con el token de un solo uso.
func buildPasswordResetMessage(from, email, token string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + email + "\r\n")
	b.WriteString("Subject: Restablecimiento de contraseña - Crypto Assets\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, `<html>
<body>
	<h2>Restablecer tu contraseña</h2>
	<p>Recibimos una solicitud para restablecer la contraseña de tu cuenta de Crypto Assets.</p>
	<p>Tu token de restablecimiento es:</p>
	<p><strong>%s</strong></p>
	<p>El token vence en 24 horas. Si no pediste este cambio, ignora este correo y tu contraseña seguirá siendo la misma.</p>
</body>
</html>
`, token)

	return []byte(b.String())
}

// SendPasswordResetEmail envía el token de restablecimiento por correo.
// Sin configuración SMTP solo se registra el token, para que el flujo
// funcione en desarrollo.
func SendPasswordResetEmail(email, token string) error {
	config, ok := loadSMTPConfig()
	if !ok {
		log.Printf("SMTP sin configurar, token de restablecimiento para %s: %s", email, token)
		return nil
	}

	auth := smtp.PlainAuth("", config.User, config.Pass, config.Host)
	message := buildPasswordResetMessage(config.From, email, token)

	if err := smtp.SendMail(config.Host+":"+config.Port, auth, config.From, []string{email}, message); err != nil {
		log.Printf("Error al enviar el correo de restablecimiento a %s: %v", email, err)
		return err
	}

	return nil
}
