package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"pos-backend/pkg/utils"

	"go.uber.org/zap"
)

// Sender mengirim email transactional. Semua pemanggil memperlakukan
// pengiriman sebagai fire-and-forget: error hanya di-log, tidak pernah
// menggagalkan request yang memicunya.
type Sender interface {
	Send(to, toName, subject, htmlContent, textContent string) error
}

// Discard untuk test / deployment tanpa SMTP
type Discard struct{}

func (Discard) Send(to, toName, subject, htmlContent, textContent string) error {
	return nil
}

type smtpSender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) Sender {
	return &smtpSender{
		config: config,
		log:    log,
	}
}

func (s *smtpSender) Send(to, toName, subject, htmlContent, textContent string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	msg := buildMessage(s.config.From, to, toName, subject, htmlContent, textContent)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, msg); err != nil {
		s.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	s.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// altBoundary dipakai sebagai pemisah multipart; konten email kita
// hasilkan sendiri jadi tidak mungkin bentrok dengan boundary ini
const altBoundary = "==pos-backend-alternative=="

// buildMessage menyusun pesan multipart/alternative: text/plain dulu
// untuk mail client tanpa HTML, lalu text/html sebagai varian pilihan
func buildMessage(from, to, toName, subject, htmlContent, textContent string) []byte {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: \"%s\" <%s>\r\n", toName, to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", altBoundary))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", altBoundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(textContent)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", altBoundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlContent)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", altBoundary))

	return []byte(msg.String())
}
