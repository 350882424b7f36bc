package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const tempPasswordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateTempPassword returns a random one-time credential for a freshly
// provisioned account. Ambiguous characters (0/O, 1/l) are excluded.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 10
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = tempPasswordAlphabet[int(b)%len(tempPasswordAlphabet)]
	}
	return string(out), nil
}

// DeriveUsername prefers the applicant's email; without one it falls back
// to surname + submission timestamp.
func DeriveUsername(email *string, lastName string, now time.Time) string {
	if email != nil && strings.TrimSpace(*email) != "" {
		return strings.ToLower(strings.TrimSpace(*email))
	}
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lastName), " ", ""))
	if base == "" {
		base = "resident"
	}
	return fmt.Sprintf("%s%d", base, now.Unix())
}

// RandomSuffix disambiguates a colliding username.
func RandomSuffix() (string, error) {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
