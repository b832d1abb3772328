package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Go   Tips\tand Tricks ", "go-tips-and-tricks"},
		{"Men's Clothing", "men's-clothing"},
		{"single", "single"},
		{"A/B Testing", "a-b-testing"},
		{"CI / CD", "ci-cd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SimpleSlug(tt.in), tt.in)
	}
}

func TestSluggerFor(t *testing.T) {
	s, err := SluggerFor("ascii")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", s("Héllo, Wörld!"))

	s, err = SluggerFor("")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", s("Hello World"))

	_, err = SluggerFor("kebab")
	assert.Error(t, err)
}

func TestValidSlug(t *testing.T) {
	assert.True(t, validSlug("hello-world"))
	assert.False(t, validSlug(""))
	assert.False(t, validSlug("hello world"))
	assert.False(t, validSlug("a/b"))
}
