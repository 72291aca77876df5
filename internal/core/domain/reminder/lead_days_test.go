package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadDays(t *testing.T) {
	cases := []struct {
		raw      string
		expected LeadDays
		isValid  bool
	}{
		{raw: "1", expected: LeadDays(1), isValid: true},
		{raw: "7", expected: LeadDays(7), isValid: true},
		{raw: "30", expected: LeadDays(30), isValid: true},
		{raw: "5", expected: LeadDays(5), isValid: true},
		{raw: "0", isValid: false},
		{raw: "-1", isValid: false},
		{raw: "", isValid: false},
		{raw: "week", isValid: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			days, err := ParseLeadDays(testcase.raw)
			if !testcase.isValid {
				assert.ErrorIs(t, err, ErrParseLeadDays)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, days)
		})
	}
}

func TestLeadDaysInCatalog(t *testing.T) {
	for _, days := range LeadDaysCatalog {
		assert.True(t, days.InCatalog())
	}
	assert.False(t, LeadDays(5).InCatalog())
	assert.False(t, LeadDays(0).InCatalog())
	assert.False(t, LeadDays(60).InCatalog())
}
