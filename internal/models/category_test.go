package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductLines(t *testing.T) {
	got := ProductLines("Li-Ion 18650 Cell\n\n  \nFlySky FS-16X 2.4GHz\r\n")
	assert.Equal(t, []string{"Li-Ion 18650 Cell", "FlySky FS-16X 2.4GHz"}, got)
}

func TestNonBlank(t *testing.T) {
	assert.Equal(t, []string{"Li-Ion 18650 Cell"}, NonBlank([]string{"Li-Ion 18650 Cell", "", "  "}))
	assert.Empty(t, NonBlank(nil))
	assert.NotNil(t, NonBlank(nil))
}
