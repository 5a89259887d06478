package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	for _, env := range []string{"production", "development", "test", ""} {
		require.NoError(t, Init(env), env)
		assert.NotNil(t, zap.L())
	}
}
