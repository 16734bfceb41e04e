package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/credential"
	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
	"github.com/spec-kit/support-assistant/internal/validation"
)

// PasswordResetService exposes the password policy and applies resets for
// the configured account.
type PasswordResetService struct {
	credentials *credential.Store
	user        domain.User
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         Clock
}

// PasswordResetDependencies bundles collaborators for the password flow.
type PasswordResetDependencies struct {
	Credentials *credential.Store
	User        domain.User
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Clock       Clock
}

// NewPasswordResetService constructs the service.
func NewPasswordResetService(deps PasswordResetDependencies) *PasswordResetService {
	s := &PasswordResetService{
		credentials: deps.Credentials,
		user:        deps.User,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
		now:         deps.Clock,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = defaultClock
	}
	return s
}

// Handle describes the account and the password requirements. It never
// writes.
func (s *PasswordResetService) Handle(ctx context.Context) domain.Response {
	var b strings.Builder
	b.WriteString("🔐 Password Reset\n\n")
	fmt.Fprintf(&b, "Account: %s (%s)\n", s.user.Name, s.user.Email)
	fmt.Fprintf(&b, "User ID: %s\n\n", s.user.ID)
	b.WriteString("Your new password must meet these requirements:\n")
	for _, rule := range validation.PolicyRules() {
		fmt.Fprintf(&b, "• %s\n", rule)
	}

	return info(strings.TrimRight(b.String(), "\n"),
		[]string{linkSecurity},
		[]string{"Enter a new password", "Speak to a human agent"},
	)
}

// ResetPassword stores a new digest when newPassword meets the policy.
func (s *PasswordResetService) ResetPassword(ctx context.Context, newPassword string) domain.Response {
	policy, err := s.credentials.Reset(ctx, newPassword)
	if !policy.Valid {
		s.logger.Info("password reset rejected", zap.String("reason", policy.Message))
		return validationFailed(policy.Message+".", "Try a different password")
	}
	if err != nil {
		s.logger.Error("password reset failed", zap.String("user_id", s.user.ID), zap.Error(err))
		return failed("Sorry, we couldn't update your password right now. Please try again later.")
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventPasswordResetApplied,
		RecordID:  s.user.ID,
		Timestamp: s.now(),
		Payload:   events.PasswordResetPayload{UserID: s.user.ID},
	})

	text := fmt.Sprintf(`✅ Password Reset Successful!

Your password for %s has been updated. Use your new password the next time you sign in.`, s.user.Email)
	return success(text, "",
		[]string{linkSecurity},
		[]string{"Review account security settings", "Ask a question"},
	)
}
