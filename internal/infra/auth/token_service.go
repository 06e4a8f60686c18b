package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vault/config"
	"vault/internal/domain/service"
	"vault/internal/errors"
)

// Token purposes. A token presented for the wrong purpose fails verification
// the same way a tampered one does.
const (
	purposeAPIAccess     = "api_access"
	purposePasswordReset = "password_reset"
)

// resetTokenTTL bounds the validity of password-reset tokens.
const resetTokenTTL = 15 * time.Minute

// tokenClaims carries the account ID plus the state signature the token was
// derived from: the token version for API tokens, a password-hash fragment
// for reset tokens.
type tokenClaims struct {
	Purpose      string `json:"pur"`
	TokenVersion int64  `json:"ver,omitempty"`
	HashFragment string `json:"frg,omitempty"`
	jwt.RegisteredClaims
}

// hmacTokenService implements service.TokenService with HMAC-signed tokens.
// No token is ever stored: verification re-derives and compares, and the sole
// revocation primitive is mutating the account state the token was bound to.
type hmacTokenService struct {
	secret []byte
}

// NewTokenService is the constructor for hmacTokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &hmacTokenService{secret: []byte(cfg.SecretKey)}, nil
}

// IssueAPIToken creates a non-expiring token bound to the account's current
// token version. Issuance is deterministic over (userID, tokenVersion) apart
// from the issued-at stamp, which verification ignores.
func (s *hmacTokenService) IssueAPIToken(userID uuid.UUID, tokenVersion int64) (string, error) {
	claims := tokenClaims{
		Purpose:      purposeAPIAccess,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign api token")
	}

	return signed, nil
}

// ParseAPIToken verifies the signature and purpose and returns the embedded
// account ID and token version.
func (s *hmacTokenService) ParseAPIToken(token string) (uuid.UUID, int64, error) {
	claims, err := s.parse(token, purposeAPIAccess)
	if err != nil {
		return uuid.Nil, 0, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, 0, service.ErrInvalidToken
	}

	return userID, claims.TokenVersion, nil
}

// IssuePasswordResetToken creates a 15-minute token bound to a fragment of
// the stored password hash.
func (s *hmacTokenService) IssuePasswordResetToken(userID uuid.UUID, hashFragment string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Purpose:      purposePasswordReset,
		HashFragment: hashFragment,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign password reset token")
	}

	return signed, nil
}

// ParsePasswordResetToken verifies signature, purpose and expiry and returns
// the embedded account ID and hash fragment.
func (s *hmacTokenService) ParsePasswordResetToken(token string) (uuid.UUID, string, error) {
	claims, err := s.parse(token, purposePasswordReset)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", service.ErrInvalidToken
	}

	return userID, claims.HashFragment, nil
}

// parse collapses every verification failure into service.ErrInvalidToken so
// callers cannot distinguish malformed from expired from unknown tokens.
func (s *hmacTokenService) parse(token, purpose string) (*tokenClaims, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, service.ErrInvalidToken
	}

	if claims.Purpose != purpose {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}
