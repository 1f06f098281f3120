package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"meetease/core/config"
)

// EmailMessage is an outbound email.
type EmailMessage struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// SMTPConfig holds the connection settings for the outbound mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// GetEmailConfig builds the SMTP settings from the app config.
func GetEmailConfig() *SMTPConfig {
	cfg := config.Get()
	return &SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
	}
}

// BuildEmailMessage renders the raw RFC 5322 message bytes.
func BuildEmailMessage(from string, msg EmailMessage) []byte {
	contentType := "text/plain; charset=utf-8"
	if msg.IsHTML {
		contentType = "text/html; charset=utf-8"
	}
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: " + contentType + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// SendEmailTLS delivers the message over SMTP with STARTTLS.
func SendEmailTLS(conf SMTPConfig, msg EmailMessage) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}
	addr := fmt.Sprintf("%s:%d", conf.Host, conf.Port)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: conf.Host}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if conf.Username != "" {
		auth := smtp.PlainAuth("", conf.Username, conf.Password, conf.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	from := conf.From
	if from == "" {
		from = conf.Username
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(BuildEmailMessage(from, msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
