package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateReferenceNumber builds the human-shareable lookup key handed to
// applicants who registered without an email: REF-YYYYMMDD-####.
func GenerateReferenceNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand failing means something is deeply wrong; fall back
		// to a time-derived suffix rather than aborting the intake
		n = big.NewInt(now.UnixNano() % 10000)
	}
	return fmt.Sprintf("REF-%s-%04d", now.Format("20060102"), n.Int64())
}

// ComputeIsSenior applies the 60-and-above rule at submission time.
func ComputeIsSenior(birthdate, now time.Time) bool {
	age := now.Year() - birthdate.Year()
	if now.YearDay() < birthdate.YearDay() {
		age--
	}
	return age >= 60
}
