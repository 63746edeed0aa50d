package resource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_String(t *testing.T) {
	tab := NewID(Tab)
	reg := NewID(Registry)

	t.Run("string", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(tab.String(), "tab-"))
		assert.True(t, strings.HasPrefix(reg.String(), "reg-"))
		assert.Len(t, tab.String(), len("tab-")+8)
	})

	t.Run("unique", func(t *testing.T) {
		assert.NotEqual(t, tab, NewID(Tab))
	})

	t.Run("global", func(t *testing.T) {
		assert.Equal(t, "global", GlobalID.String())
	})

	t.Run("parse kind", func(t *testing.T) {
		got, err := ParseKind(tab.String())
		require.NoError(t, err)
		assert.Equal(t, Tab, got)

		_, err = ParseKind("bogus-1234")
		assert.Error(t, err)
	})
}
