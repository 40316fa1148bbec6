package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// StringsDigest returns the hex SHA256 of the given strings, each terminated
// by a NUL byte so that ["ab"] and ["a", "b"] differ.
func StringsDigest(values []string) string {
	hash := sha256.New()
	for _, v := range values {
		_, _ = io.WriteString(hash, v)
		_, _ = hash.Write([]byte{0})
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
