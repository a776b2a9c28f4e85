// Package password hashes and verifies credentials with Argon2id. Hashes
// are self-describing PHC strings, so cost parameters can be retuned
// without invalidating records hashed under the old settings.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const hashPrefix = "$argon2id$"

// Default costs for interactive web auth: 3 iterations over 64 MiB,
// single lane.
const (
	DefaultTime    uint32 = 3
	DefaultMemory  uint32 = 64 * 1024
	DefaultThreads uint8  = 1

	saltLen = 16
	keyLen  = 32
)

type Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

func NewHasher() *Hasher {
	return &Hasher{time: DefaultTime, memory: DefaultMemory, threads: DefaultThreads}
}

// Hash derives an Argon2id key from plaintext under a fresh random salt and
// returns the PHC-encoded string. Two calls on the same input yield
// different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, keyLen)

	encoded := fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		hashPrefix,
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether plaintext matches the encoded hash. Malformed or
// foreign hash strings verify as false, never as an error.
func (h *Hasher) Verify(plaintext, encoded string) bool {
	memory, time, threads, salt, key, ok := decode(encoded)
	if !ok {
		return false
	}

	derived := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1
}

// LooksLikeHash is a cheap structural check used to tell a stored hash from
// a plaintext credential. It does not validate the encoded parameters.
func LooksLikeHash(value string) bool {
	return strings.HasPrefix(value, hashPrefix)
}

func decode(encoded string) (memory, time uint32, threads uint8, salt, key []byte, ok bool) {
	if !strings.HasPrefix(encoded, hashPrefix) {
		return 0, 0, 0, nil, nil, false
	}

	parts := strings.Split(encoded, "$")
	// ["", "argon2id", "v=19", "m=...,t=...,p=...", salt, key]
	if len(parts) != 6 {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memory == 0 || time == 0 || threads == 0 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, time, threads, salt, key, true
}
