package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode_IsActive(t *testing.T) {
	tests := []struct {
		code StatusCode
		want bool
	}{
		{"A", true},
		{"a", true},
		{"I", false},
		{"", false},
		{"ACTIVE", false},
		{"Activo", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.IsActive(), "code %q", tt.code)
	}
}
