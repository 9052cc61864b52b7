package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearbyBlocks(t *testing.T) {
	blocks := NearbyBlocks("C")
	assert.Equal(t, []string{"C", "B", "D", "HALL"}, blocks)

	// Unknown blocks return just themselves.
	assert.Equal(t, []string{"X"}, NearbyBlocks("X"))
}
