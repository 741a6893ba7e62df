package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/types"
)

func TestExpandConcept(t *testing.T) {
	messages := ExpandConcept(types.Entity{Label: "AI", Content: "machine intelligence"}, 3)
	require.Len(t, messages, 2)

	assert.Equal(t, types.Role("system"), messages[0].Role)
	assert.Equal(t, types.Role("user"), messages[1].Role)

	user := messages[1].Content
	assert.Contains(t, user, "<CONCEPT>\nAI\n</CONCEPT>")
	assert.Contains(t, user, "<DESCRIPTION>\nmachine intelligence\n</DESCRIPTION>")
	assert.Contains(t, user, "exactly 3 distinct concepts")
}

func TestExpandConceptNoContent(t *testing.T) {
	messages := ExpandConcept(types.Entity{Label: "AI"}, 2)
	require.Len(t, messages, 2)
	assert.NotContains(t, messages[1].Content, "<DESCRIPTION>")
}
