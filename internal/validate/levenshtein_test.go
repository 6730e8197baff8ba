package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("label", "label"))
	assert.Equal(t, 1, levenshtein("labelled", "labeled"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 5, levenshtein("", "hello"))
}

func TestClosestMatch(t *testing.T) {
	candidates := map[string]bool{"labelledby": true, "describedby": true, "hidden": true}
	assert.Equal(t, "labelledby", closestMatch("labeledby", candidates))
	assert.Equal(t, "", closestMatch("totallyunrelatedword", candidates))
}
