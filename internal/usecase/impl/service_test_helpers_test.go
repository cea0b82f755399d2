package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinica/config"
	"clinica/internal/domain/repository"
	mockRepo "clinica/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// testZone stands in for the clinic's reference zone without depending on the
// host tzdata.
var testZone = time.FixedZone("UTC-5", -5*60*60)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPassthroughTx wires a transaction manager mock that runs every callback
// against a single repository factory, standing in for a real transaction.
func newPassthroughTx(t *testing.T) (*mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager, factory
}

func tokenTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Tokens = &config.TokenConfig{
		ActivationTTL:     48 * time.Hour,
		PasswordResetTTL:  24 * time.Hour,
		DeepLinkTTL:       48 * time.Hour,
		MaxActivePerOwner: 3,
		UsedRetention:     7 * 24 * time.Hour,
	}

	return cfg
}

func sweepTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AutoCancel = &config.AutoCancelConfig{
		Enabled:       true,
		LeadHours:     48,
		SweepInterval: 15 * time.Minute,
		SoftTimeout:   5 * time.Minute,
	}
	cfg.Reminder = &config.ReminderConfig{
		WindowDays:  3,
		Policy:      config.ReminderPolicyOnce,
		RunAt:       "08:00",
		SoftTimeout: 5 * time.Minute,
	}

	return cfg
}
