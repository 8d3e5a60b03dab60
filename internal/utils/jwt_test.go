package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("goal-keeper", 123, time.Hour, "secret-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.OwnerID)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, "goal-keeper", token.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("iss", 456, 5*time.Minute, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("iss", 1, -time.Second, "key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		key       string
		issuer    string
		wantOwner int64
		wantErrIs error
		wantErr   bool
	}{
		{name: "valid", token: valid.SignedString, key: "key", issuer: "iss", wantOwner: 456},
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "iss", wantErr: true},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "fake", wantErr: true},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "iss", wantErr: true, wantErrIs: jwt.ErrTokenExpired},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "iss", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, got.OwnerID)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(bad)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, bad)
	}
}

func TestParseOwnerIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("iss", 77, time.Hour, "key")
	require.NoError(t, err)

	ownerID, err := ParseOwnerIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(77), ownerID)

	_, err = ParseOwnerIDFromJWT("garbage")
	assert.Error(t, err)
}
