package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"followerId", "follower ID"},
		{"followedId", "followed ID"},
		{"table", "table"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", codeForStatus(404))
	assert.Equal(t, "NOT_FOUND", codeForStatus(405))
	assert.Equal(t, "UNAUTHORIZED", codeForStatus(401))
	assert.Equal(t, "CONFLICT", codeForStatus(409))
	assert.Equal(t, "VALIDATION_ERROR", codeForStatus(400))
}
