package logincode

import (
	"reemind/internal/core/domain/owner"
	"testing"
)

func TestLoginCodeGenerator(t *testing.T) {
	generator := NewGenerator()
	for i := 0; i < 100; i++ {
		code := generator.GenerateLoginCode()
		if len(code) != 6 {
			t.Fatalf("code %q must be 6 digits", code)
		}
		for _, r := range string(code) {
			if r < '0' || r > '9' {
				t.Fatalf("code %q must contain only digits", code)
			}
		}
	}
}

func TestLoginCodesVary(t *testing.T) {
	generator := NewGenerator()
	codes := make(map[owner.LoginCode]struct{})
	for i := 0; i < 100; i++ {
		codes[generator.GenerateLoginCode()] = struct{}{}
	}
	if len(codes) < 2 {
		t.Fatal("generator must not return a constant code")
	}
}
