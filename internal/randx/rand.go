// Package randx provides small helpers for generating random identifiers.
package randx

import (
	"crypto/rand"
	"fmt"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// String generates a random base36 string of length n. It returns an error
// if the random number generator fails.
//
// Example:
//
//	s, err := randx.String(6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // e.g., "k3x09q"
func String(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid length %d", n)
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}

	return string(b), nil
}
