package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityToken_ValidAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token SecurityToken
		want  bool
	}{
		{
			name:  "unused before expiry",
			token: SecurityToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			// Expiry is exclusive: validity requires now strictly before ExpiresAt.
			name:  "expires exactly now",
			token: SecurityToken{ExpiresAt: now},
			want:  false,
		},
		{
			name:  "expired",
			token: SecurityToken{ExpiresAt: now.Add(-time.Second)},
			want:  false,
		},
		{
			name:  "used before expiry",
			token: SecurityToken{ExpiresAt: now.Add(time.Hour), Used: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.ValidAt(now))
		})
	}
}

func TestDeepLinkPayload_EncodeDecode(t *testing.T) {
	payload := DeepLinkPayload{
		AppointmentID: uuid.New(),
		Context:       "confirmation",
	}

	encoded, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := DecodeDeepLinkPayload(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload.AppointmentID, decoded.AppointmentID)
	assert.Equal(t, payload.Context, decoded.Context)
}

func TestDecodeDeepLinkPayload_Malformed(t *testing.T) {
	decoded, err := DecodeDeepLinkPayload("{not json")
	require.Error(t, err)
	assert.Nil(t, decoded)
}
