package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestStableValue(t *testing.T) {
	digest := Digest([]string{"class.c", "error.c", "tsk3.c"})

	assert.Equal(t, "sha256:3229bce7694065d6b095edbebc79cf42598cc33cbefebc9b975fd57969a5c7da", digest)
}

func TestDigestOrderIndependent(t *testing.T) {
	shuffled := []string{"tsk3.c", "class.c", "error.c"}

	digest := Digest(shuffled)

	assert.Equal(t, Digest([]string{"class.c", "error.c", "tsk3.c"}), digest)
	assert.Equal(t, []string{"tsk3.c", "class.c", "error.c"}, shuffled, "input order preserved")
}

func TestDigestDistinguishesLists(t *testing.T) {
	base := Digest([]string{"class.c", "error.c"})

	assert.NotEqual(t, base, Digest([]string{"class.c"}))
	assert.NotEqual(t, base, Digest([]string{"class.c", "error.cpp"}))
}

func TestDigestEmptyList(t *testing.T) {
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(nil))
	assert.Equal(t, Digest(nil), Digest([]string{}))
}
