package domain

// SessionKey is the key under which the session snapshot lives in durable
// client storage.
const SessionKey = "user"

// SessionSnapshot is the serialized identity written to durable client
// storage on login and account registration. It is a snapshot, not the
// record of truth: restoring a session re-fetches the user by id and
// discards the snapshot when the id no longer resolves.
type SessionSnapshot struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

// SnapshotSigner serializes and signs a session snapshot for persistence.
type SnapshotSigner interface {
	Sign(snapshot *SessionSnapshot) (string, error)
}

// SnapshotVerifier verifies a signed snapshot and returns it. Any tampered
// or malformed input must fail verification.
type SnapshotVerifier interface {
	Verify(signed string) (*SessionSnapshot, error)
}

// KeyValueStore is durable client storage: string keys to string values.
// No schema version, no expiry.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
