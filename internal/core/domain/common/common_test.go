package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailNormalizesAddress(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{"test@test.com", Email("test@test.com")},
		{"TEST@Test.Com", Email("test@test.com")},
		{"  test@test.com ", Email("test@test.com")},
	}
	for _, testcase := range cases {
		assert.Equal(t, testcase.expected, NewEmail(testcase.raw))
	}
}

func TestOptionalString(t *testing.T) {
	opt := NewOptional(1, false)
	assert.Equal(t, "[-]", opt.String())

	opt = NewOptional(1, true)
	assert.Equal(t, "[1]", opt.String())
}
