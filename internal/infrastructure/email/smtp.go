package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"zarya/internal/domain/user"
	"zarya/internal/shared/config"
)

// TicketNotifier emails the support inbox when tickets are created or a
// customer replies, and emails the ticket owner when staff respond. A
// disabled notifier silently drops everything.
type TicketNotifier struct {
	cfg    config.EmailConfig
	users  user.Repository
	dialer *gomail.Dialer
}

func NewTicketNotifier(cfg config.EmailConfig, users user.Repository) *TicketNotifier {
	return &TicketNotifier{
		cfg:    cfg,
		users:  users,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (n *TicketNotifier) NotifyTicketCreated(ctx context.Context, ticketID uint, subject string) error {
	if !n.cfg.Enabled {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New support ticket #%d</h2>
			<p>Subject: %s</p>
		</body>
		</html>
	`, ticketID, subject)

	return n.send(n.cfg.StaffAddress, fmt.Sprintf("New support ticket #%d", ticketID), body)
}

func (n *TicketNotifier) NotifyResponseAdded(ctx context.Context, ticketID, ownerID uint, isStaffResponse bool) error {
	if !n.cfg.Enabled {
		return nil
	}

	if isStaffResponse {
		owner, err := n.users.GetByID(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to resolve ticket owner: %w", err)
		}

		body := fmt.Sprintf(`
			<html>
			<body>
				<h2>Your ticket #%d has a new reply</h2>
				<p>Support responded to your ticket #%d. Sign in to read it.</p>
			</body>
			</html>
		`, ticketID, ticketID)

		return n.send(owner.Email(), fmt.Sprintf("Reply on your ticket #%d", ticketID), body)
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New reply on ticket #%d</h2>
			<p>A customer added a response to ticket #%d.</p>
		</body>
		</html>
	`, ticketID, ticketID)

	return n.send(n.cfg.StaffAddress, fmt.Sprintf("New reply on ticket #%d", ticketID), body)
}

func (n *TicketNotifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
