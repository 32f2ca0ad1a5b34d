package visitor

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// NewPassCode builds the QR payload for a pass. The format
// {name}-{flat}-{unixMillis} is the wire format the gate scanners and the
// existing store already understand; uniqueness within a millisecond is
// enforced by the store's unique constraint, not here.
func NewPassCode(visitorName, flatNumber string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", strings.TrimSpace(visitorName), strings.TrimSpace(flatNumber), now.UnixMilli())
}

// NewOTP returns a 6-digit numeric fallback code. The range [100000, 999999]
// intentionally excludes leading-zero values to stay compatible with codes
// already issued by the reference generator.
func NewOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing is unrecoverable for code issuance
		panic(fmt.Sprintf("visitor: otp generation failed: %v", err))
	}
	return fmt.Sprintf("%d", n.Int64()+100000)
}
