package plural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	assert.Equal(t, "1 row", Count(1, "row"))
	assert.Equal(t, "0 rows", Count(0, "row"))
	assert.Equal(t, "12,345 rows", Count(12345, "row"))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "", Suffix(1, "es"))
	assert.Equal(t, "es", Suffix(2, "es"))
}
