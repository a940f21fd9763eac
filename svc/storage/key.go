package storage

import "strings"

const keySeparator = "_"

// Key identifies the records of one storage type for one user.
// Its string form is "{type}_{userID}".
type Key struct {
	Type   string
	UserID string
}

// NewKey builds the key string for storageType and userID.
func NewKey(storageType, userID string) string {
	return storageType + keySeparator + userID
}

// ParseKey splits a key on "_". The second segment is the user id, so a
// storage type that contains "_" yields the wrong user id; callers should
// avoid such types.
func ParseKey(key string) (Key, error) {
	parts := strings.Split(key, keySeparator)
	if len(parts) < 2 || parts[1] == "" {
		return Key{}, ErrInvalidKey
	}
	return Key{Type: parts[0], UserID: parts[1]}, nil
}

// String returns the key in "{type}_{userID}" form.
func (k Key) String() string {
	return NewKey(k.Type, k.UserID)
}
