// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Algorithm selects the hash function used for content digests.
type Algorithm uint8

const (
	// SHA256 is the default. Every existing ledger uses it.
	SHA256 Algorithm = iota

	// BLAKE3 is the unkeyed 256-bit BLAKE3 hash.
	BLAKE3

	// SHA3_256 is the FIPS 202 SHA3-256 hash.
	SHA3_256
)

// String returns the configuration name of the algorithm.
func (algorithm Algorithm) String() string {
	switch algorithm {
	case SHA256:
		return "sha256"
	case BLAKE3:
		return "blake3"
	case SHA3_256:
		return "sha3-256"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(algorithm))
	}
}

// ParseAlgorithm parses an algorithm from its configuration name. The
// empty string selects SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", "sha256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	case "sha3-256":
		return SHA3_256, nil
	default:
		return 0, fmt.Errorf("unknown digest algorithm %q (want sha256, blake3, or sha3-256)", name)
	}
}

// newHash returns a fresh hasher for the algorithm. All supported
// algorithms produce 32-byte digests.
func (algorithm Algorithm) newHash() (hash.Hash, error) {
	switch algorithm {
	case SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm: %s", algorithm)
	}
}
