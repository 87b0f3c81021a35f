package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewToken(t *testing.T) {
	hasher := &TokenHasher{}

	first, err := hasher.NewToken()
	assert.NoError(t, err)
	assert.Len(t, first, 48)

	second, err := hasher.NewToken()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashToken(t *testing.T) {
	hasher := &TokenHasher{}

	tests := []struct {
		name        string
		token       string
		expectError bool
	}{
		{
			name:        "Valid Token",
			token:       "a1b2c3d4e5f6",
			expectError: false,
		},
		{
			name:        "Empty Token",
			token:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedToken, err := hasher.HashToken(tt.token)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedToken)
			}
		})
	}
}

func TestCompareToken(t *testing.T) {
	hasher := &TokenHasher{}

	tests := []struct {
		name        string
		token       string
		setup       func() string
		expectMatch bool
	}{
		{
			name:  "Matching Token",
			token: "a1b2c3d4e5f6",
			setup: func() string {
				hashedToken, _ := hasher.HashToken("a1b2c3d4e5f6")
				return hashedToken
			},
			expectMatch: true,
		},
		{
			name:  "Non-Matching Token",
			token: "wrongtoken",
			setup: func() string {
				hashedToken, _ := hasher.HashToken("a1b2c3d4e5f6")
				return hashedToken
			},
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedToken := tt.setup()

			match := hasher.CompareToken(hashedToken, tt.token)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
