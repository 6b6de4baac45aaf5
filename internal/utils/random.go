package utils

import (
	"crypto/rand"
	"math/big"
)

const randomAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomString 生成由数字和小写字母组成的随机串
func RandomString(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(randomAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = randomAlphabet[idx.Int64()]
	}
	return string(b)
}
