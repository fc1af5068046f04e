package notify

import (
	"fmt"
	"strings"

	"brandsite/internal/mailer"
	"brandsite/internal/models"
)

// Dispatcher composes and sends the two notifications that follow every
// successful submission: a notice to the site owner and a confirmation to the
// submitter. Sends are sequential, each awaited; a failure aborts the pair and
// propagates to the caller.
type Dispatcher struct {
	mailer mailer.Mailer
	owner  string
}

func New(m mailer.Mailer, ownerEmail string) *Dispatcher {
	return &Dispatcher{
		mailer: m,
		owner:  ownerEmail,
	}
}

func (d *Dispatcher) BookingReceived(b models.Booking) error {
	const op = "notify.Dispatcher.BookingReceived"

	var detail strings.Builder
	fmt.Fprintf(&detail, "Name: %s\nEmail: %s\n", b.Name, b.Email)
	if b.Company != "" {
		fmt.Fprintf(&detail, "Company: %s\n", b.Company)
	}
	fmt.Fprintf(&detail, "Date: %s\nTime: %s\n", b.Date, b.Time)
	if b.Message != "" {
		fmt.Fprintf(&detail, "Message: %s\n", b.Message)
	}

	owner := mailer.Message{
		To:      d.owner,
		Subject: fmt.Sprintf("New booking request from %s", b.Name),
		Text:    detail.String(),
		HTML:    htmlBody("New booking request", detail.String()),
	}
	if err := d.mailer.Send(owner); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	confirmText := fmt.Sprintf(
		"Hi %s,\n\nYour strategy session request for %s at %s has been received. We'll confirm shortly.\n",
		b.Name, b.Date, b.Time,
	)
	confirm := mailer.Message{
		To:      b.Email,
		Subject: "Your strategy session request",
		Text:    confirmText,
		HTML:    htmlBody("Request received", confirmText),
	}
	if err := d.mailer.Send(confirm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (d *Dispatcher) ContactReceived(c models.Contact) error {
	const op = "notify.Dispatcher.ContactReceived"

	var detail strings.Builder
	fmt.Fprintf(&detail, "Name: %s\nEmail: %s\n", c.Name, c.Email)
	if c.Subject != "" {
		fmt.Fprintf(&detail, "Subject: %s\n", c.Subject)
	}
	fmt.Fprintf(&detail, "Message: %s\n", c.Message)

	owner := mailer.Message{
		To:      d.owner,
		Subject: fmt.Sprintf("New contact message from %s", c.Name),
		Text:    detail.String(),
		HTML:    htmlBody("New contact message", detail.String()),
	}
	if err := d.mailer.Send(owner); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	confirmText := fmt.Sprintf(
		"Hi %s,\n\nThanks for getting in touch. Your message has been received and we'll reply as soon as possible.\n",
		c.Name,
	)
	confirm := mailer.Message{
		To:      c.Email,
		Subject: "We received your message",
		Text:    confirmText,
		HTML:    htmlBody("Message received", confirmText),
	}
	if err := d.mailer.Send(confirm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func htmlBody(title, text string) string {
	var b strings.Builder

	b.WriteString("<h2>" + title + "</h2>")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString("<p>" + line + "</p>")
	}

	return b.String()
}
