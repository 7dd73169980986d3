// File: calmora/services/booking/catalog_test.go
package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDailySlots(t *testing.T) {
	expected := []string{"8:00", "9:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	assert.Equal(t, expected, GenerateDailySlots())
}

func TestGenerateDailySlotsExcludesMiddayBreak(t *testing.T) {
	slots := GenerateDailySlots()
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "17:00")
}

func TestGenerateDailySlotsIsDeterministic(t *testing.T) {
	assert.Equal(t, GenerateDailySlots(), GenerateDailySlots())
}
