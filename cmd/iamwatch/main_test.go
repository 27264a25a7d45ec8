package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{
			name:     "invalid threshold",
			args:     []string{"--threshold", "0"},
			expected: exitConfigError,
		},
		{
			name:     "unknown flag",
			args:     []string{"--bogus"},
			expected: exitConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(tt.args))
		})
	}
}
