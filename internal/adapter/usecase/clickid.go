package usecase

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// NewClickID mints a click identifier: the 16 bytes of a random (v4) UUID
// encoded as unpadded base64url, 22 characters carrying 122 random bits.
func NewClickID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(id[:]), nil
}
