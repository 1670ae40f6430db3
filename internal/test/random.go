package test

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	asciiLetters = lowerLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomUsername returns a lowercase operator name.
func RandomUsername() string {
	return randomFrom(lowerLetters, 5, 12)
}

// RandomEmail returns a syntactically valid address on example.com.
func RandomEmail() string {
	return fmt.Sprintf("%s.%s@example.com", randomFrom(lowerLetters, 3, 8), randomFrom(lowerLetters, 3, 8))
}

// RandomName returns a capitalised two-word name.
func RandomName() string {
	first := randomFrom(lowerLetters, 3, 9)
	last := randomFrom(lowerLetters, 4, 10)
	return strings.ToUpper(first[:1]) + first[1:] + " " + strings.ToUpper(last[:1]) + last[1:]
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
