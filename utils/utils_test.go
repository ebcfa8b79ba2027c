package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueSorted(t *testing.T) {
	assert.Equal(t, []string{"English", "French", "Spanish"}, UniqueSorted([]string{"Spanish", " English", "French", "English", "", "  "}))
	assert.Empty(t, UniqueSorted(nil))
}
