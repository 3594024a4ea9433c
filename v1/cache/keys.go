package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key derives a deterministic cache key of the form "prefix:hexdigest" from a
// request value: the request is serialized to canonical JSON, hashed with
// SHA-256, and hex-encoded.
//
// Structurally equal requests always yield the same key: encoding/json emits
// map keys in sorted order and struct fields in declaration order, so repeated
// identical requests deduplicate naturally. There is no salt and no versioning:
// change the prefix when the envelope schema changes, since entries written
// under an old schema will fail to deserialize and be evicted on read.
//
// Key returns ErrSerialization (wrapped) if the request cannot be serialized.
func Key(prefix string, request any) (string, error) {
	serialized, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	digest := sha256.Sum256(serialized)
	return prefix + ":" + hex.EncodeToString(digest[:]), nil
}
