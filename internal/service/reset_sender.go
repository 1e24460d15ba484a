package service

import (
	"context"
	"log/slog"
)

// ResetTokenSender delivers a password-reset token to the account holder.
// Mail delivery lives outside this service; the slog sender is the stand-in
// until the mail integration lands.
type ResetTokenSender interface {
	SendResetToken(ctx context.Context, email, token string) error
}

type LogResetTokenSender struct {
	logger *slog.Logger
}

func NewLogResetTokenSender(logger *slog.Logger) *LogResetTokenSender {
	return &LogResetTokenSender{logger: logger}
}

func (s *LogResetTokenSender) SendResetToken(ctx context.Context, email, token string) error {
	s.logger.InfoContext(ctx, "password reset token issued", "email", email, "token", token)
	return nil
}
