package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	InviteCodeLength   = 6
	inviteCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateInviteCode returns a random uppercase alphanumeric code (36^6 space)
func GenerateInviteCode() (string, error) {
	code := make([]byte, InviteCodeLength)

	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[num.Int64()]
	}

	return string(code), nil
}

// NormalizeInviteCode trims and upper-cases user input before matching
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsInviteCode reports whether code has the generated shape
func IsInviteCode(code string) bool {
	if len(code) != InviteCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(inviteCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
