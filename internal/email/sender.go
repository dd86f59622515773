package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Settings configures SMTP delivery.
type Settings struct {
	// Host and Port locate the SMTP server.
	Host string `json:"host"`
	Port int    `json:"port"`

	// From is the sender address.
	From string `json:"from"`

	// Username and Password enable PLAIN auth when Username is non-empty.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// sendFunc matches smtp.SendMail; tests substitute a recorder.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers rendered emails over SMTP.
type Sender struct {
	settings Settings
	send     sendFunc
}

// NewSender creates a Sender for the given SMTP settings.
func NewSender(settings Settings) *Sender {
	return &Sender{settings: settings, send: smtp.SendMail}
}

// Send delivers an HTML body to the recipient.
func (s *Sender) Send(to, subject, htmlBody string) error {
	if s.settings.Host == "" || s.settings.From == "" {
		return fmt.Errorf("smtp settings incomplete: host and from are required")
	}

	var auth smtp.Auth
	if s.settings.Username != "" {
		auth = smtp.PlainAuth("", s.settings.Username, s.settings.Password, s.settings.Host)
	}

	msg := buildMessage(s.settings.From, to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", s.settings.Host, s.settings.Port)

	if err := s.send(addr, auth, s.settings.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// buildMessage assembles an RFC 5322 message with an HTML body.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return []byte(b.String())
}
