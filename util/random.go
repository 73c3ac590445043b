package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt returns a random integer in [min, max].
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString returns a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder

	for i := 0; i < n; i++ {
		c := alphabet[rand.IntN(len(alphabet))]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomCode returns a short random identifier usable as a set or card code.
func RandomCode() string {
	return RandomString(8)
}
