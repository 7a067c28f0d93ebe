package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingNumberFormat(t *testing.T) {
	format := regexp.MustCompile(`^CKL\d{11}$`)

	for i := 0; i < 50; i++ {
		tn := GenerateTrackingNumber()
		assert.Regexp(t, format, tn)
	}
}

func TestGenerateOrderID(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	id := GenerateOrderID(now)

	assert.Len(t, id, 27)
	assert.Equal(t, "2025-06-15T12:30:00Z", id[:20])
	assert.Regexp(t, `^[0-9a-z]{7}$`, id[20:])
}
