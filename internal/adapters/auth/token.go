package auth

import (
	"fmt"
	"strconv"
	"time"

	"eventmanager/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type jwtSigner struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer returns a TokenIssuer that signs HS256 JWTs with the given secret.
// The session's ID becomes the token's jti and its ExpiresAt the exp claim.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return newJWTSigner(secret)
}

// NewJWTVerifier returns a TokenVerifier for tokens produced by NewJWTIssuer with the same secret.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return newJWTSigner(secret)
}

func newJWTSigner(secret string) *jwtSigner {
	return &jwtSigner{secret: []byte(secret), now: time.Now}
}

func (s *jwtSigner) Issue(session *domain.Session) (string, error) {
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Username: session.Username,
		IsAdmin:  session.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify returns domain.ErrNotAuthenticated for tokens that are malformed, expired,
// signed with another key or algorithm, or missing a session id.
func (s *jwtSigner) Verify(tokenString string) (*domain.Session, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotAuthenticated, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: token has no session id", domain.ErrNotAuthenticated)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", domain.ErrNotAuthenticated)
	}
	return &domain.Session{
		ID:        claims.ID,
		UserID:    userID,
		Username:  claims.Username,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

