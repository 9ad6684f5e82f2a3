/*
Package randx provides cryptographically secure random identifiers.

It generates Base62 suffixes used to keep stored object keys unique even when
two uploads sanitize to the same disk name, plus UUID connection identifiers
for the live chat transport.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Base62Chars is the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the size of the Base62 character set.
	Base62Len = int64(len(Base62Chars))

	// ObjectSuffixLength is the length of the random suffix appended to object keys.
	ObjectSuffixLength = 8
)

// Base62 generates a Base62 string of length n using crypto/rand.
func Base62(n int) (string, error) {
	result := make([]byte, n)

	for i := range n {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random base62 character: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// ObjectSuffix returns the random suffix that keeps stored object keys unique.
func ObjectSuffix() (string, error) {
	return Base62(ObjectSuffixLength)
}

// ConnectionID generates a UUID v4 string identifying one live chat connection
// for the lifetime of its transport session.
func ConnectionID() string {
	return uuid.New().String()
}
