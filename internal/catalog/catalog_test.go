package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Order(t *testing.T) {
	list := List()
	require.Len(t, list, 4)

	ids := make([]string, len(list))
	for i, tpl := range list {
		ids[i] = tpl.ID
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Description)
	}
	assert.Equal(t, []string{Modern, Professional, Creative, Minimal}, ids)
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].Name = "mutated"

	assert.Equal(t, "Modern", List()[0].Name)
}

func TestFind(t *testing.T) {
	tpl, ok := Find(Creative)
	require.True(t, ok)
	assert.Equal(t, "Creative", tpl.Name)

	_, ok = Find("nonexistent")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Modern, Default().ID)
}
