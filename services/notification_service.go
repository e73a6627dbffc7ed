package services

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer sends plain-text email over SMTP.
type Mailer struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

func NewMailer(host string, port int, user, password, fromName, fromEmail string) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	return client.DialAndSend(msg)
}

// NotificationService delivers guest-facing messages best-effort. Delivery
// failures are recorded through the audit sink and never reach the caller;
// check-in and check-out must succeed even when the mail server is down.
// A nil mailer degrades to logging only.
type NotificationService struct {
	mailer *Mailer
	audit  AuditSink
	log    *zap.Logger
}

func NewNotificationService(mailer *Mailer, audit AuditSink, log *zap.Logger) *NotificationService {
	return &NotificationService{mailer: mailer, audit: audit, log: log}
}

// Send delivers one message and swallows any failure.
func (s *NotificationService) Send(recipient, message, subject string) {
	if recipient == "" {
		return
	}
	if s.mailer == nil {
		s.log.Info("notification (no mailer configured)",
			zap.String("recipient", recipient), zap.String("subject", subject))
		s.audit.Record("NOTIFICATION sent", "system",
			fmt.Sprintf("%s - Recipient: %s", subject, recipient))
		return
	}
	if err := s.mailer.Send(recipient, subject, message); err != nil {
		s.log.Warn("notification delivery failed",
			zap.String("recipient", recipient), zap.String("subject", subject), zap.Error(err))
		s.audit.Record("NOTIFICATION failed", "system",
			fmt.Sprintf("%s - Recipient: %s - Error: %v", subject, recipient, err))
		return
	}
	s.audit.Record("NOTIFICATION sent", "system",
		fmt.Sprintf("%s - Recipient: %s", subject, recipient))
}

func (s *NotificationService) SendReservationConfirmed(recipient string, reservationID uint, checkIn, checkOut time.Time) {
	msg := fmt.Sprintf("Your reservation #%d has been confirmed. Check-in: %s, Check-out: %s",
		reservationID, checkIn.Format("02/01/2006"), checkOut.Format("02/01/2006"))
	s.Send(recipient, msg, "Reservation Confirmed")
}

func (s *NotificationService) SendCheckIn(recipient, roomNumbers string) {
	msg := fmt.Sprintf("Welcome! Your check-in is complete. Room(s): %s. Enjoy your stay!", roomNumbers)
	s.Send(recipient, msg, "Check-In Complete")
}

func (s *NotificationService) SendCheckOut(recipient, invoiceNumber string, total string) {
	msg := fmt.Sprintf("Thank you for staying with us! Your check-out is processed. Invoice: %s, Total: %s. We hope to see you again soon!",
		invoiceNumber, total)
	s.Send(recipient, msg, "Check-Out and Invoice")
}

func (s *NotificationService) SendCancellation(recipient string, reservationID uint) {
	msg := fmt.Sprintf("Your reservation #%d has been cancelled.", reservationID)
	s.Send(recipient, msg, "Reservation Cancelled")
}
