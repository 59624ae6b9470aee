package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON fingerprints a value by its JSON form. Used to skip
// redundant catalog snapshot writes.
func HashJSON(jsonData any) string {
	data, _ := json.Marshal(jsonData)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
