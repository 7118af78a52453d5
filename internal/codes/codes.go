package codes

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

// Word lists for generating easy-to-read connection codes
var adjectives = []string{
	"amber", "blue", "calm", "coral", "gentle", "golden", "green", "happy",
	"kind", "lilac", "mellow", "misty", "olive", "peach", "quiet", "rosy",
	"silver", "sunny", "teal", "warm",
}

var nouns = []string{
	"garden", "harbor", "maple", "meadow", "orchard", "pebble", "river",
	"sparrow", "willow", "lantern", "cottage", "bridge", "clover", "acorn",
	"breeze", "candle", "feather", "hollow", "island", "prairie",
}

var codePattern = regexp.MustCompile(`^[a-z]+-[a-z]+-\d{4}$`)

// Generate returns a connection code in the form "adjective-noun-NNNN".
// Codes are meant to be read aloud over the phone, so every part is a
// plain lowercase word or digit.
func Generate() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}
	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	digits := make([]byte, 4)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return adjective + "-" + noun + "-" + string(digits), nil
}

// Valid reports whether a string has the shape of a connection code
func Valid(code string) bool {
	return codePattern.MatchString(strings.TrimSpace(strings.ToLower(code)))
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[n.Int64()], nil
}
