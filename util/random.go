package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomMoney generates a random amount in cents
func RandomMoney() int64 {
	return RandomInt(10000, 1000000)
}

// RandomPhone generates a random mainland mobile number
func RandomPhone() string {
	return fmt.Sprintf("1%d%09d", RandomInt(3, 9), RandomInt(0, 999999999))
}

// RandomPlate generates a random plate number
func RandomPlate() string {
	return fmt.Sprintf("京A%05d", RandomInt(0, 99999))
}
