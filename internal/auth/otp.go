package auth

import (
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// DeriveSecret produces a per-phone TOTP secret from the shared base
// secret. Unpadded base32 over sha256, so codes survive restarts and
// need no server-side secret storage.
func DeriveSecret(baseSecret, phoneNumber string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", baseSecret, phoneNumber)))
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:])
}

// GenerateCode returns the 6-digit code for the given instant.
func GenerateCode(secret string, at time.Time, interval int) (string, error) {
	return totp.GenerateCodeCustom(secret, at, totpOpts(interval, 0))
}

// ValidateCode checks a code against the secret, accepting codes up to
// window intervals away from the current one.
func ValidateCode(secret, code string, at time.Time, interval, window int) bool {
	ok, err := totp.ValidateCustom(code, secret, at, totpOpts(interval, window))
	return err == nil && ok
}

func totpOpts(interval, window int) totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(interval),
		Skew:      uint(window),
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}
