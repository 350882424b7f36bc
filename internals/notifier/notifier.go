package notifier

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"

	"ebarangay_backend/internals/configs"
)

// Service delivers applicant notifications over SMTP. Delivery is
// best-effort: sends run in their own goroutine with a timeout and a
// failure is logged, never surfaced to the request that triggered it.
type Service struct {
	host     string
	port     string
	username string
	password string
	from     string
	timeout  time.Duration
	enabled  bool
}

func NewFromEnv() *Service {
	s := &Service{
		host:     configs.GetEnv("SMTP_HOST"),
		port:     configs.GetEnv("SMTP_PORT", "587"),
		username: configs.GetEnv("SMTP_USERNAME"),
		password: configs.GetEnv("SMTP_PASSWORD"),
		from:     configs.GetEnv("SMTP_FROM", "noreply@ebarangay.local"),
		timeout:  5 * time.Second,
	}
	s.enabled = s.host != ""
	if !s.enabled {
		log.Println("⚠️ SMTP_HOST not set, notifications are log-only")
	}
	return s
}

// Send fires the message asynchronously. Safe on a nil receiver and with
// an empty recipient (applicants without email simply get nothing).
func (s *Service) Send(to, subject, body string) {
	if s == nil || strings.TrimSpace(to) == "" {
		return
	}
	go func() {
		if !s.enabled {
			log.Printf("[INFO] notify (log-only) to=%s subject=%q", to, subject)
			return
		}
		if err := s.send(to, subject, body); err != nil {
			log.Printf("[WARN] notify failed to=%s: %v", to, err)
		}
	}()
}

func (s *Service) send(to, subject, body string) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, s.timeout)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(s.timeout))

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// NotifyApproval delivers the generated credentials to a freshly approved
// applicant.
func (s *Service) NotifyApproval(to, username, tempPassword string, householdNumber *string) {
	body := fmt.Sprintf(
		"Your barangay registration has been approved.\n\nUsername: %s\nTemporary password: %s\n",
		username, tempPassword,
	)
	if householdNumber != nil {
		body += fmt.Sprintf("Household number: %s\n", *householdNumber)
	}
	body += "\nPlease log in and change your password immediately."
	s.Send(to, "Registration approved", body)
}

// NotifyRejection informs the applicant, optionally with the reviewer's
// reason.
func (s *Service) NotifyRejection(to string, reason *string) {
	body := "Your barangay registration has been rejected."
	if reason != nil && strings.TrimSpace(*reason) != "" {
		body += "\n\nReason: " + *reason
	}
	s.Send(to, "Registration update", body)
}
