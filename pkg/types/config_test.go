package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil stays nil", in: nil, want: nil},
		{name: "lowercased", in: []string{"RS", "Go"}, want: []string{"rs", "go"}},
		{name: "dots stripped", in: []string{".txt"}, want: []string{"txt"}},
		{name: "whitespace trimmed", in: []string{" md ", "go"}, want: []string{"md", "go"}},
		{name: "wildcard collapses to all", in: []string{"*"}, want: nil},
		{name: "empty entries dropped", in: []string{"", "rs"}, want: []string{"rs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := SearchConfig{Root: ".", Pattern: "x", Extensions: tt.in}.Normalize()
			assert.Equal(t, tt.want, cfg.Extensions)
		})
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	cfg := SearchConfig{Root: ".", Pattern: "x", Extensions: []string{"GO"}}
	_ = cfg.Normalize()
	assert.Equal(t, []string{"GO"}, cfg.Extensions)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, SearchConfig{Root: "."}.Validate(), ErrEmptyPattern)
	assert.ErrorIs(t, SearchConfig{Pattern: "x"}.Validate(), ErrRootNotFound)
	assert.NoError(t, SearchConfig{Root: ".", Pattern: "x"}.Validate())
}

func TestAllExtensions(t *testing.T) {
	assert.True(t, SearchConfig{}.AllExtensions())
	assert.False(t, SearchConfig{Extensions: []string{"go"}}.AllExtensions())
}
