package mailer

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSender struct {
	mu    sync.Mutex
	err   error
	sends []struct {
		to      string
		subject string
		body    string
	}
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, struct {
		to      string
		subject string
		body    string
	}{to, subject, htmlBody})
	return f.err
}

func TestNotifier_DeliversToAdmin(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@foodcart.example", zap.NewNop())

	n.NotifyInquiry(InquiryNotification{
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Requirement: "Looking for a pizza cart",
		ProductName: "Pizza Cart (2023)",
	})
	n.Close()

	assert.Len(t, sender.sends, 1)
	assert.Equal(t, "admin@foodcart.example", sender.sends[0].to)
	assert.Equal(t, "New Inquiry from Ravi", sender.sends[0].subject)
	assert.Contains(t, sender.sends[0].body, "New Inquiry Received!")
	assert.Contains(t, sender.sends[0].body, "Pizza Cart (2023)")
	assert.Contains(t, sender.sends[0].body, "Looking for a pizza cart")
}

func TestNotifier_OmitsEmptyFieldsFromBody(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@foodcart.example", zap.NewNop())

	n.NotifyInquiry(InquiryNotification{Name: "Ravi", Requirement: "Call me back"})
	n.Close()

	assert.Len(t, sender.sends, 1)
	body := sender.sends[0].body
	assert.NotContains(t, body, "Email:")
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Product Interest:")
}

func TestNotifier_SkipsWithoutSender(t *testing.T) {
	n := NewNotifier(nil, "admin@foodcart.example", zap.NewNop())
	n.NotifyInquiry(InquiryNotification{Name: "Ravi"})
	n.Close()
}

func TestNotifier_SkipsWithoutAdminEmail(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "", zap.NewNop())
	n.NotifyInquiry(InquiryNotification{Name: "Ravi"})
	n.Close()

	assert.Empty(t, sender.sends)
}

// A request racing shutdown may still call NotifyInquiry after Close; the
// notification is dropped instead of panicking on the closed queue.
func TestNotifier_NotifyAfterCloseIsDropped(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "admin@foodcart.example", zap.NewNop())
	n.Close()

	assert.NotPanics(t, func() {
		n.NotifyInquiry(InquiryNotification{Name: "Ravi", Requirement: "Need a cart"})
	})
	assert.NotPanics(t, n.Close)
	assert.Empty(t, sender.sends)
}

func TestNotifier_SendErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay unreachable")}
	n := NewNotifier(sender, "admin@foodcart.example", zap.NewNop())

	n.NotifyInquiry(InquiryNotification{Name: "Ravi", Requirement: "Need a cart"})
	n.NotifyInquiry(InquiryNotification{Name: "Priya", Requirement: "Need two carts"})
	n.Close()

	assert.Len(t, sender.sends, 2)
}
