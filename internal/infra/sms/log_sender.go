// Package sms hands text messages to the SMS gateway.
package sms

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/service"
	"loyalty/internal/util"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender returns a sender that writes messages to the log at DEBUG level.
// It stands in for a real gateway, which is operated outside this service.
func NewLogSender(logger *slog.Logger) service.SMSSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, phone, message string) error {
	s.logger.DebugContext(ctx, "[SMS] Delivering message",
		slog.String("phone", util.MaskPhone(phone)),
		slog.String("message", message),
	)

	return nil
}
