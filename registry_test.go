package gmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreatesFallback(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	require.NotNil(t, reg.Fallback())
	assert.Equal(t, "Default", reg.Fallback().Name)
	assert.Equal(t, MaterialId(1), reg.Fallback().Id())
}

func TestRegistrySetFallback(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	custom := reg.NewMaterial("Pink")
	reg.SetFallback(custom)
	assert.Same(t, custom, reg.Fallback())

	reg.SetFallback(nil)
	assert.Same(t, custom, reg.Fallback(), "nil must not clear the fallback")
}

func TestRegistryIdNeverReused(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	m := reg.NewMaterial("a")
	id := m.Id()
	m.Destroy()

	next := reg.NewMaterial("b")
	assert.Greater(t, uint64(next.Id()), uint64(id), "ids must not be reused after destroy")
	assert.Equal(t, id, m.Id(), "id must stay stable after destroy")
}

func TestRegistryLogger(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	require.NotNil(t, reg.Logger())

	log := NewDefaultLogger("test", true)
	reg2 := NewMaterialRegistry(log)
	assert.Same(t, log, reg2.Logger())
}
