package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"wahlfang/contexts/election-management/election-service/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Access codes avoid characters that are easy to mistype from a printout.
const (
	accessCodeAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	accessCodeLength   = 12
	passwordLength     = 16
)

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Compare(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type RandomTokens struct{}

func (RandomTokens) NewAccessCode() (string, error) {
	return randomString(accessCodeLength)
}

func (RandomTokens) NewSpectatorToken() (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate spectator token: %w", err)
	}
	return token.String(), nil
}

func (RandomTokens) NewPassword() (string, error) {
	return randomString(passwordLength)
}

// HashAccessCode is deterministic so codes can be looked up by hash.
func (RandomTokens) HashAccessCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func randomString(length int) (string, error) {
	limit := big.NewInt(int64(len(accessCodeAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate random token: %w", err)
		}
		out[i] = accessCodeAlphabet[n.Int64()]
	}
	return string(out), nil
}

var _ ports.PasswordHasher = BcryptHasher{}
var _ ports.TokenGenerator = RandomTokens{}
