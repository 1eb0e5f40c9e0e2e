package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintJSON(t *testing.T) {
	assert.NoError(t, printJSON(json.RawMessage(`{"id":1}`)))
	assert.NoError(t, printJSON(nil))
	assert.Error(t, printJSON(json.RawMessage(`{broken`)))
}

func TestOrUntitled(t *testing.T) {
	assert.Equal(t, "Standup", orUntitled("Standup"))
	assert.Equal(t, "Untitled", orUntitled(""))
}

func TestCommandTree(t *testing.T) {
	want := []string{"meetings", "recordings", "users", "chat", "phone", "summary", "serve", "generate-docs", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "command %q not registered", name)
	}
}
