package history

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// digestLen is the hex length of question digests. The hashes are soft
// anti-repetition signals, not uniqueness guarantees, so a short
// truncated digest is enough and collisions are acceptable.
const digestLen = 12

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeQuestion lowercases and collapses whitespace so literal
// repeats hash identically regardless of formatting.
func normalizeQuestion(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// QuestionHash returns the exact-text digest of a question: a literal
// repeat detector that survives case and whitespace changes.
func QuestionHash(text string) string {
	return digest(normalizeQuestion(text))
}

var digitRunRe = regexp.MustCompile(`\d+`)

// StructuralHash returns the template digest of a question: all digit
// runs are replaced with a placeholder so "What is 3 + 4?" and
// "What is 12 + 9?" hash identically. Catches same-template questions
// with different numbers.
func StructuralHash(text string) string {
	return digest(digitRunRe.ReplaceAllString(normalizeQuestion(text), "#"))
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:digestLen]
}
