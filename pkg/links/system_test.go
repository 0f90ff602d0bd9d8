package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemLinks_AuthoredOrder(t *testing.T) {
	want := []string{"oa", "contract", "translate", "nas", "teambition", "models", "prompts", "knowledge", "tools"}

	got := SystemLinks()
	require.Len(t, got, len(want))
	for i, l := range got {
		assert.Equal(t, want[i], l.ID, "position %d", i)
		assert.True(t, l.IsSystem, "link %s", l.ID)
		assert.NotEmpty(t, l.Title, "link %s", l.ID)
		assert.NotEmpty(t, l.URL, "link %s", l.ID)
		assert.NotEmpty(t, l.Icon, "link %s", l.ID)
	}
	assert.Equal(t, "oa", got[0].ID)
	assert.Equal(t, "tools", got[len(got)-1].ID)
}

func TestSystemLinks_ReturnsCopy(t *testing.T) {
	got := SystemLinks()
	got[0].Title = "changed"
	got[1] = got[2]

	again := SystemLinks()
	assert.Equal(t, "OA", again[0].Title)
	assert.Equal(t, "contract", again[1].ID)
}

func TestIsSystemID(t *testing.T) {
	assert.True(t, IsSystemID("oa"))
	assert.True(t, IsSystemID("tools"))
	assert.False(t, IsSystemID("custom"))
	assert.False(t, IsSystemID(""))
}
