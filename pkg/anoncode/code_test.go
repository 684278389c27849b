package anoncode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		eventID  string
	}{
		{name: "SimpleLogin", identity: "alice", eventID: "event-1"},
		{name: "UnicodeLogin", identity: "пользователь", eventID: "event-1"},
		{name: "LongLogin", identity: strings.Repeat("x", 200), eventID: "event-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := Code(tt.identity, tt.eventID)

			assert.Equal(t, code, Code(tt.identity, tt.eventID), "code should be deterministic")
			assert.GreaterOrEqual(t, len(code), 6)
			assert.LessOrEqual(t, len(code), 8)
			for _, c := range code {
				assert.Contains(t, alphabet, string(c))
			}
		})
	}
}

func TestCodeDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, Code("alice", "event-1"), Code("bob", "event-1"))
	assert.NotEqual(t, Code("alice", "event-1"), Code("alice", "event-2"))
}

func TestAnonymousCode(t *testing.T) {
	assert.Equal(t, "ANONYM", AnonymousCode)
}
