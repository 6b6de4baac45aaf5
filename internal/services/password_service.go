package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher 使用 bcrypt 哈希和校验密码
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

// Hash 生成密码哈希
func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("generate password hash: %w", err)
	}
	return string(bytes), nil
}

// Compare 校验明文密码与哈希是否匹配
func (h *BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
