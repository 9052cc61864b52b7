package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffInitial(t *testing.T) {
	assert.Equal(t, byte('J'), Staff{FirstName: "Johan"}.Initial())
	assert.Equal(t, byte('J'), Staff{FirstName: "johan"}.Initial())
	assert.Equal(t, byte('A'), Staff{}.Initial())
}
