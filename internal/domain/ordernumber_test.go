package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderNumberRe = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{9}$`)

func TestNewOrderNumber_Format(t *testing.T) {
	n := NewOrderNumber()
	assert.Regexp(t, orderNumberRe, n)
}

func TestNewOrderNumber_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := NewOrderNumber()
		_, dup := seen[n]
		assert.False(t, dup, "duplicate order number %s", n)
		seen[n] = struct{}{}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, ValidOrderStatus(s))
	}
	assert.False(t, ValidOrderStatus("refunded"))
	assert.False(t, ValidOrderStatus(""))
}
