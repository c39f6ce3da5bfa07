package ident

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the character set identifiers are drawn from.
type Alphabet string

const (
	Hex     Alphabet = "0123456789abcdef"
	Numeric Alphabet = "0123456789"
	URLSafe Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// ExistsFunc reports whether a candidate identifier is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Random returns a random string of n characters from the alphabet.
func Random(n int, alphabet Alphabet) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("ident: read random: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// Issue generates a random identifier of n characters and retries until the
// exists check reports it free. There is no retry cap: with these alphabets
// and lengths a collision is vanishingly rare, and an occupied candidate just
// costs one more round. Errors from the check are returned as-is so storage
// failures are never swallowed.
func Issue(ctx context.Context, n int, alphabet Alphabet, exists ExistsFunc) (string, error) {
	for {
		candidate, err := Random(n, alphabet)
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
