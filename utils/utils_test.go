package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("other")))

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestGenerateSecurePassword(t *testing.T) {
	p, err := GenerateSecurePassword(20)
	require.NoError(t, err)
	assert.Len(t, p, 20)

	short, err := GenerateSecurePassword(4)
	require.NoError(t, err)
	assert.Len(t, short, 12)

	other, err := GenerateSecurePassword(20)
	require.NoError(t, err)
	assert.NotEqual(t, p, other)
}
