package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", ErrActivityNotFound, CodeActivityNotFound},
		{"wrapped already registered", fmt.Errorf("signup: %w", ErrAlreadyRegistered), CodeAlreadyRegistered},
		{"not registered", ErrNotRegistered, CodeNotRegistered},
		{"foreign error", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
