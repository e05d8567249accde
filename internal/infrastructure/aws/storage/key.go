package storage

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"time"
)

const (
	tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenLength   = 13
)

// NewObjectKey builds a storage key of the form
// {millisecond-timestamp}-{random-token}{.ext}. The timestamp keeps keys
// roughly sorted and the token makes a collision practically impossible
// at this traffic scale; there is no uniqueness re-check against the
// bucket.
func NewObjectKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomToken(tokenLength), ext)
}

func randomToken(length int) string {
	buf := make([]byte, length)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}
