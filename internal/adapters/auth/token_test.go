package auth

import (
	"testing"
	"time"

	"eventmanager/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testSession(expiresAt time.Time) *domain.Session {
	return &domain.Session{
		ID:        "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		UserID:    42,
		Username:  "alice",
		IsAdmin:   true,
		ExpiresAt: expiresAt,
	}
}

func TestJWTIssuer_Issue(t *testing.T) {
	issuer := NewJWTIssuer(testSecret)
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := issuer.Issue(testSession(expiresAt))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", claims.ID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt))
}

func TestJWTVerifier_Verify(t *testing.T) {
	issuer := NewJWTIssuer(testSecret)
	verifier := NewJWTVerifier(testSecret)

	valid, err := issuer.Issue(testSession(time.Now().Add(time.Hour)))
	require.NoError(t, err)
	expired, err := issuer.Issue(testSession(time.Now().Add(-time.Minute)))
	require.NoError(t, err)
	otherKey, err := NewJWTIssuer("another-secret").Issue(testSession(time.Now().Add(time.Hour)))
	require.NoError(t, err)
	noJTI := testSession(time.Now().Add(time.Hour))
	noJTI.ID = ""
	withoutID, err := issuer.Issue(noJTI)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"jti": "x", "sub": "1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: valid},
		{name: "expired", token: expired, wantErr: true},
		{name: "wrong key", token: otherKey, wantErr: true},
		{name: "missing session id", token: withoutID, wantErr: true},
		{name: "alg none", token: none, wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := verifier.Verify(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrNotAuthenticated)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), s.UserID)
			assert.Equal(t, "alice", s.Username)
			assert.True(t, s.IsAdmin)
			assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", s.ID)
		})
	}
}

