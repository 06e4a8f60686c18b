package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Parse methods for any token that does not
// verify: malformed, tampered, expired or carrying the wrong purpose. Callers
// must not distinguish between those cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenService derives and verifies the two opaque token classes issued from
// account state. Tokens are never persisted: each one is a signed function of
// the account's ID plus a state signature, so mutating that signature
// invalidates everything issued before.
type TokenService interface {
	// IssueAPIToken creates a non-expiring API access token bound to the
	// account's current token version. Two calls against the same unmutated
	// state yield verifiable-equivalent tokens.
	IssueAPIToken(userID uuid.UUID, tokenVersion int64) (string, error)

	// ParseAPIToken verifies the signature and returns the embedded account
	// ID and token version. The caller still has to compare the version
	// against the account's current one.
	ParseAPIToken(token string) (userID uuid.UUID, tokenVersion int64, err error)

	// IssuePasswordResetToken creates a time-boxed reset token bound to a
	// fragment of the stored password hash, so changing the password
	// implicitly invalidates outstanding reset tokens.
	IssuePasswordResetToken(userID uuid.UUID, hashFragment string) (string, error)

	// ParsePasswordResetToken verifies signature and expiry and returns the
	// embedded account ID and hash fragment.
	ParsePasswordResetToken(token string) (userID uuid.UUID, hashFragment string, err error)
}
