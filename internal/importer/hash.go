package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// normalize lowercases, trims and unifies line endings so that cosmetic edits
// do not produce a new card.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ToLower(strings.TrimSpace(s))
}

// ContentHash returns the hex SHA-256 of the normalized front and back. Each
// side is length-prefixed, so moving text across the boundary changes the hash.
func ContentHash(front, back string) string {
	h := sha256.New()
	for _, side := range [...]string{normalize(front), normalize(back)} {
		h.Write([]byte(strconv.Itoa(len(side)) + ":" + side))
	}
	return hex.EncodeToString(h.Sum(nil))
}
