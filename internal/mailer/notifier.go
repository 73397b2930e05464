package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"go.uber.org/zap"
)

// InquiryNotification carries everything the admin email needs about a newly
// submitted inquiry.
type InquiryNotification struct {
	Name        string
	Email       string
	Phone       string
	Requirement string
	ProductName string
}

const queueSize = 64

// Notifier delivers inquiry notifications from a background worker. Delivery
// is best-effort: a failed or dropped notification is logged and never
// surfaces to the request that enqueued it.
type Notifier struct {
	sender     Sender
	adminEmail string
	logger     *zap.Logger
	queue      chan InquiryNotification
	done       chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewNotifier starts the delivery worker. sender may be nil when no mail
// relay is configured; notifications are then skipped with a log line.
func NewNotifier(sender Sender, adminEmail string, logger *zap.Logger) *Notifier {
	n := &Notifier{
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
		queue:      make(chan InquiryNotification, queueSize),
		done:       make(chan struct{}),
	}
	go n.run()
	return n
}

// NotifyInquiry enqueues a notification without blocking. When the queue is
// full, or the notifier has been closed, the notification is dropped.
func (n *Notifier) NotifyInquiry(in InquiryNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.logger.Warn("notifier closed, dropping inquiry notification",
			zap.String("name", in.Name))
		return
	}
	select {
	case n.queue <- in:
	default:
		n.logger.Warn("notification queue full, dropping inquiry notification",
			zap.String("name", in.Name))
	}
}

// Close drains the queue and stops the worker. Safe to call more than once.
func (n *Notifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for in := range n.queue {
		n.deliver(in)
	}
}

func (n *Notifier) deliver(in InquiryNotification) {
	if n.sender == nil {
		n.logger.Info("mail relay not configured, skipping inquiry notification")
		return
	}
	if n.adminEmail == "" {
		n.logger.Info("no admin email configured for inquiry notifications")
		return
	}

	body, err := composeInquiryHTML(in)
	if err != nil {
		n.logger.Error("compose inquiry notification", zap.Error(err))
		return
	}

	subject := fmt.Sprintf("New Inquiry from %s", in.Name)
	if err := n.sender.Send(n.adminEmail, subject, body); err != nil {
		n.logger.Error("send inquiry notification",
			zap.String("to", n.adminEmail), zap.Error(err))
		return
	}
	n.logger.Info("inquiry notification sent", zap.String("to", n.adminEmail))
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #B89551; margin-bottom: 20px;">New Inquiry Received!</h2>

    <div style="background: #f9f9f9; padding: 20px; border-radius: 5px; margin-bottom: 20px;">
      <p><strong>Customer Name:</strong> {{.Name}}</p>
      {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
      {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
      {{if .ProductName}}<p><strong>Product Interest:</strong> {{.ProductName}}</p>{{end}}
    </div>

    <div style="background: #fff3cd; padding: 20px; border-radius: 5px;">
      <p><strong>Requirement:</strong></p>
      <p style="white-space: pre-wrap;">{{.Requirement}}</p>
    </div>

    <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">

    <p style="color: #666; font-size: 12px;">
      This is an automated notification from your Foodcart website.
    </p>
  </div>
</div>
`))

func composeInquiryHTML(in InquiryNotification) (string, error) {
	var buf bytes.Buffer
	if err := inquiryTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
