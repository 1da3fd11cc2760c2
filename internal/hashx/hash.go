// Package hashx implements the demo password digest.
//
// The digest is an order-dependent 32-bit rolling hash encoded in base 36.
// It exists so passwords are not stored as plain text in the snapshot, and
// for nothing else: it is NOT cryptographically secure and must never be
// used outside this demo. A real deployment would replace it with a salted
// password hash (argon2id, bcrypt) without changing callers, since the
// digest is only ever compared for equality.
package hashx

import "strconv"

// Digest returns the rolling-hash digest of s.
//
// For every rune c the accumulator is updated as h = h*31 + c with int32
// wraparound, and the final value is formatted in base 36 (negative values
// keep their sign). Equal inputs always produce equal digests; nothing
// stronger is promised.
func Digest(s string) string {
	var h int32
	for _, c := range s {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 36)
}
