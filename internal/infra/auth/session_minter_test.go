package auth

import (
	"testing"
	"time"

	"clinica/config"
	mockSvc "clinica/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minterTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Auth = &config.AuthConfig{SessionTTL: 15 * time.Minute}

	return cfg
}

func TestNewSessionMinter_RequiresSecret(t *testing.T) {
	cfg := minterTestConfig()
	cfg.SecretKey.Session = ""

	minter, err := NewSessionMinter(cfg, mockSvc.NewMockClock(t))
	require.Error(t, err)
	assert.Nil(t, minter)
}

func TestSessionMinter_MintClaims(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(now)

	minter, err := NewSessionMinter(minterTestConfig(), mockClock)
	require.NoError(t, err)

	patientID := uuid.New()
	appointmentID := uuid.New()

	signed, err := minter.Mint(patientID, appointmentID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-session-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, patientID.String(), claims["sub"])
	assert.Equal(t, appointmentID.String(), claims["appt"])
	assert.Equal(t, "deep_link_session", claims["type"])
	assert.Equal(t, float64(now.Unix()), claims["iat"])
	assert.Equal(t, float64(now.Add(15*time.Minute).Unix()), claims["exp"])
}

func TestSessionMinter_RejectsWrongSecret(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	mockClock.EXPECT().Now().Return(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	minter, err := NewSessionMinter(minterTestConfig(), mockClock)
	require.NoError(t, err)

	signed, err := minter.Mint(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("a different secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.Error(t, err)
}
