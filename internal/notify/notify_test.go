package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brandsite/internal/mailer"
	"brandsite/internal/mailer/mocks"
	"brandsite/internal/models"
)

func TestBookingReceivedSendsOwnerThenSubmitter(t *testing.T) {
	t.Parallel()

	m := mocks.NewMailer(t)

	var sent []mailer.Message
	m.On("Send", mock.AnythingOfType("mailer.Message")).
		Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(0).(mailer.Message))
		}).
		Return(nil).
		Twice()

	d := New(m, "owner@example.com")

	err := d.BookingReceived(models.Booking{
		ID:      1,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "Acme",
		Date:    "Mon, Jan 6",
		Time:    "10:00 AM - 11:00 AM",
	})
	require.NoError(t, err)
	require.Len(t, sent, 2)

	assert.Equal(t, "owner@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "Jane Doe")
	assert.Contains(t, sent[0].Text, "Acme")
	assert.Contains(t, sent[0].Text, "Mon, Jan 6")

	assert.Equal(t, "jane@example.com", sent[1].To)
	assert.Contains(t, sent[1].Text, "Mon, Jan 6")
	assert.Contains(t, sent[1].Text, "10:00 AM - 11:00 AM")
}

func TestBookingReceivedOwnerSendFails(t *testing.T) {
	t.Parallel()

	m := mocks.NewMailer(t)
	m.On("Send", mock.AnythingOfType("mailer.Message")).
		Return(errors.New("smtp: connection refused")).
		Once()

	d := New(m, "owner@example.com")

	err := d.BookingReceived(models.Booking{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Date:  "Mon, Jan 6",
		Time:  "10:00 AM - 11:00 AM",
	})
	require.Error(t, err)

	// The submitter confirmation must not go out when the owner notice fails.
	m.AssertNumberOfCalls(t, "Send", 1)
}

func TestContactReceivedSendsBoth(t *testing.T) {
	t.Parallel()

	m := mocks.NewMailer(t)

	var sent []mailer.Message
	m.On("Send", mock.AnythingOfType("mailer.Message")).
		Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(0).(mailer.Message))
		}).
		Return(nil).
		Twice()

	d := New(m, "owner@example.com")

	err := d.ContactReceived(models.Contact{
		ID:      1,
		Name:    "John Roe",
		Email:   "john@example.com",
		Subject: "Partnership",
		Message: "I'd like to talk about a partnership.",
	})
	require.NoError(t, err)
	require.Len(t, sent, 2)

	assert.Equal(t, "owner@example.com", sent[0].To)
	assert.Contains(t, sent[0].Text, "Partnership")
	assert.Contains(t, sent[0].Text, "I'd like to talk about a partnership.")

	assert.Equal(t, "john@example.com", sent[1].To)
	assert.Contains(t, sent[1].Text, "John Roe")
}

func TestContactReceivedConfirmationFails(t *testing.T) {
	t.Parallel()

	m := mocks.NewMailer(t)
	m.On("Send", mock.AnythingOfType("mailer.Message")).
		Return(nil).
		Once()
	m.On("Send", mock.AnythingOfType("mailer.Message")).
		Return(errors.New("smtp: auth failed")).
		Once()

	d := New(m, "owner@example.com")

	err := d.ContactReceived(models.Contact{
		Name:    "John Roe",
		Email:   "john@example.com",
		Message: "Hello, just checking in.",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth failed")
}
