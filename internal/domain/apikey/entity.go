package apikey

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrKeyInactive       = errors.New("api key is inactive")
	ErrKeyExpired        = errors.New("api key is expired")
	ErrInsufficientScope = errors.New("api key lacks required permission")
)

// Key is the read-only record the gateway holds about an API key. The raw key
// value is never stored; lookups use the SHA-256 digest.
type Key struct {
	id          uuid.UUID
	label       string
	prefix      string
	permissions PermissionSet
	active      bool
	expiresAt   *time.Time
}

func ReconstructKey(
	id uuid.UUID,
	label, prefix string,
	permissions PermissionSet,
	active bool,
	expiresAt *time.Time,
) *Key {
	return &Key{
		id:          id,
		label:       label,
		prefix:      prefix,
		permissions: permissions,
		active:      active,
		expiresAt:   expiresAt,
	}
}

// Authorize reports whether the key may perform an operation requiring the
// given permission at the given instant.
func (k *Key) Authorize(required Permission, now time.Time) error {
	if !k.active {
		return ErrKeyInactive
	}
	if k.expiresAt != nil && now.After(*k.expiresAt) {
		return ErrKeyExpired
	}
	if !k.permissions.Contains(required) {
		return ErrInsufficientScope
	}
	return nil
}

func (k *Key) ID() uuid.UUID              { return k.id }
func (k *Key) Label() string              { return k.label }
func (k *Key) Prefix() string             { return k.prefix }
func (k *Key) Permissions() PermissionSet { return k.permissions }
func (k *Key) IsActive() bool             { return k.active }
func (k *Key) ExpiresAt() *time.Time      { return k.expiresAt }

// HashKey returns the hex SHA-256 digest used as the lookup column for a raw
// bearer key.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
