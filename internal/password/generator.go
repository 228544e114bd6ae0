// Package password generates random passwords under character-class and
// length constraints. All randomness comes from crypto/rand.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Character pools for each selectable class.
const (
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()-_=+[]{};:,.<>/?"
)

// DefaultLength is the generated password length when the caller does
// not specify one.
const DefaultLength = 16

// ErrInvalidConfig is returned when the requested parameters cannot
// produce a password: no character class selected, or a length too short
// to represent every selected class. This is a caller bug, not a
// transient condition.
var ErrInvalidConfig = errors.New("invalid generator configuration")

// Classes selects which character classes a generated password draws from.
type Classes struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// AllClasses enables every character class.
func AllClasses() Classes {
	return Classes{Upper: true, Lower: true, Digits: true, Symbols: true}
}

func (c Classes) pools() []string {
	var pools []string
	if c.Upper {
		pools = append(pools, UpperChars)
	}
	if c.Lower {
		pools = append(pools, LowerChars)
	}
	if c.Digits {
		pools = append(pools, DigitChars)
	}
	if c.Symbols {
		pools = append(pools, SymbolChars)
	}
	return pools
}

// Generate produces a random password of exactly length characters with
// at least one character from every selected class. The result is seeded
// with one character per class, filled from the union of all classes, and
// shuffled with an unbiased Fisher-Yates pass so class-seeded positions
// are not predictable.
func Generate(length int, classes Classes) (string, error) {
	pools := classes.pools()
	if len(pools) == 0 {
		return "", fmt.Errorf("%w: at least one character class must be selected", ErrInvalidConfig)
	}
	if length < len(pools) {
		return "", fmt.Errorf("%w: length %d is shorter than the %d selected classes", ErrInvalidConfig, length, len(pools))
	}

	chars := make([]byte, 0, length)
	for _, pool := range pools {
		ch, err := pick(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	union := strings.Join(pools, "")
	for len(chars) < length {
		ch, err := pick(union)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	for i := len(chars) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func pick(pool string) (byte, error) {
	i, err := randIndex(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// randIndex returns a uniform random int in [0, n) from crypto/rand.
// rand.Int rejects the biased range, so no modulo bias is introduced.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random index: %w", err)
	}
	return int(v.Int64()), nil
}
