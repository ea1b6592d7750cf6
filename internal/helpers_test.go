package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", Format(date))
}
