package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. The password column holds
// the AES-GCM ciphertext, never the plaintext.
type CredentialModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Title             string    `gorm:"type:varchar(255)"`
	Username          string    `gorm:"type:varchar(255)"`
	EncryptedPassword string    `gorm:"column:password;type:text"`
	URL               string    `gorm:"column:url;type:varchar(2048)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
