// Package email delivers transactional mail. Delivery is best-effort: the
// caller's operation must not fail because a message could not be sent.
package email

import "go.uber.org/zap"

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(msg Message) error
}

// LogSender writes messages to the log instead of sending them. Used in
// development when no SMTP host is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(msg Message) error {
	s.log.Info("email (not sent, no SMTP configured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
