package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en", zaptest.NewLogger(t))
	data := map[string]any{"Email": "newstudent@mergington.edu", "Activity": "Chess Club"}

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"signup en", "en", "signup.confirmed", data, "newstudent@mergington.edu signed up for Chess Club"},
		{"unregister en", "en", "unregister.confirmed", data, "newstudent@mergington.edu unregistered from Chess Club"},
		{"signup fr", "fr", "signup.confirmed", data, "newstudent@mergington.edu est inscrit(e) à Chess Club"},
		{"unknown locale falls back", "de", "error.activity_not_found", nil, "Activity not found"},
		{"empty locale falls back", "", "error.not_registered", nil, "Student is not registered for this activity"},
		{"unknown key", "en", "no.such.key", nil, "no.such.key"},
		{"empty key", "en", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}

func TestTranslator_ErrorDetailsMatchContract(t *testing.T) {
	tr := NewTranslator("en", zaptest.NewLogger(t))

	assert.Equal(t, "Activity not found", tr.T("en", "error.activity_not_found", nil))
	assert.Contains(t, tr.T("en", "error.already_registered", nil), "already signed up")
	assert.Contains(t, tr.T("en", "error.not_registered", nil), "not registered")
}

func TestTranslator_Match(t *testing.T) {
	tr := NewTranslator("en", zaptest.NewLogger(t))

	tests := []struct {
		preferred string
		want      string
	}{
		{"", "en"},
		{"fr", "fr"},
		{"fr-CA,fr;q=0.9,en;q=0.8", "fr"},
		{"en-US", "en"},
		{"de-DE", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.preferred, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.preferred))
		})
	}
}

func TestNewTranslator_InvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("???", zaptest.NewLogger(t))

	assert.Equal(t, "en", tr.DefaultLocale())
	assert.Equal(t, "Activity not found", tr.T("", "error.activity_not_found", nil))
}
