package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than max", "http://localhost:8080", 40, "http://localhost:8080"},
		{"exactly max", "abcd", 4, "abcd"},
		{"longer than max", "abcdefghij", 7, "abcd..."},
		{"tiny max", "abcdefghij", 3, "abc"},
		{"max one", "abcdefghij", 1, "a"},
		{"max zero", "abcdefghij", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.s, tt.max))
		})
	}
}
