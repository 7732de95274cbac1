// Package cache stores corroboration records between runs so repeated
// analyses of the same claims do not re-probe the registries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface used by the registry corroborator
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from claim text plus the registry set,
// so a registry configuration change invalidates prior records
func Key(material string) string {
	hash := sha256.Sum256([]byte(material))
	return "dossier:v1:" + hex.EncodeToString(hash[:])
}
