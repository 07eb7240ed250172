package manifest

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// Digest returns a fingerprint of a source list. Entries are hashed in
// sorted order, so two lists with the same files agree regardless of
// discovery order.
func Digest(sources []string) string {
	sorted := make([]string, len(sources))
	copy(sorted, sources)
	sort.Strings(sorted)

	h := sha256.New()
	for i, src := range sorted {
		h.Write([]byte(src))
		if i < len(sorted)-1 {
			h.Write([]byte("\n"))
		}
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}
