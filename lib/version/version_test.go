package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyNumbers(t *testing.T) {
	assert.Equal(t, "0.1.0", OnlyNumbers())
}
