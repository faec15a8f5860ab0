package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessCountOptions(t *testing.T) {
	assert.Equal(t, []string{"auto", "1", "2", "3", "4"}, ProcessCountOptions(4))
	assert.Equal(t, []string{"auto", "1"}, ProcessCountOptions(1))
}

func TestProcessCountOptionsClampsBadCounts(t *testing.T) {
	assert.Equal(t, []string{"auto", "1"}, ProcessCountOptions(0))
	assert.Equal(t, []string{"auto", "1"}, ProcessCountOptions(-3))
}
