package util

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	editTokenLength = 16
	commentIdLength = 8
)

func randomBase36(length int) string {
	max := big.NewInt(int64(len(tokenAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is
			// broken, at which point serving requests is moot.
			panic(err)
		}
		out[i] = tokenAlphabet[n.Int64()]
	}
	return string(out)
}

// EditToken returns the opaque credential stamped on a post at
// creation. It is the legacy edit/delete fallback for actors without a
// hidden user id.
func EditToken() string {
	return randomBase36(editTokenLength)
}

// CommentId returns an id unique within a single post's comment list:
// a random base-36 prefix plus the current time. Not globally unique
// and not meant to be.
func CommentId() string {
	return randomBase36(commentIdLength) + strconv.FormatInt(time.Now().UnixNano(), 36)
}
