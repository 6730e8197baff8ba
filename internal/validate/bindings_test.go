package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaBindings(t *testing.T) {
	prop, ok := GetBindingProperty("currentTime")
	assert.True(t, ok)
	assert.Equal(t, "timeupdate", prop.Event)
	assert.True(t, prop.Bidirectional)
	assert.True(t, prop.OmitInSSR)
	assert.Contains(t, prop.ValidElements, "audio")
	assert.Contains(t, prop.ValidElements, "video")
}

func TestFormBindings(t *testing.T) {
	prop, ok := GetBindingProperty("value")
	assert.True(t, ok)
	assert.True(t, prop.Bidirectional)
	assert.False(t, prop.OmitInSSR)
	assert.Contains(t, prop.ValidElements, "input")
	assert.Contains(t, prop.ValidElements, "textarea")
	assert.Contains(t, prop.ValidElements, "select")
}

func TestDimensionBindings(t *testing.T) {
	prop, ok := GetBindingProperty("clientWidth")
	assert.True(t, ok)
	assert.False(t, prop.Bidirectional)
	assert.True(t, prop.OmitInSSR)
	assert.Empty(t, prop.ValidElements)
}

func TestUnknownBinding(t *testing.T) {
	_, ok := GetBindingProperty("nonexistent")
	assert.False(t, ok)
	assert.False(t, IsKnownBinding("nonexistent"))
}

func TestBindingValidForElement(t *testing.T) {
	assert.True(t, IsBindingValidForElement("value", "input"))
	assert.True(t, IsBindingValidForElement("value", "textarea"))
	assert.False(t, IsBindingValidForElement("value", "div"))
	assert.True(t, IsBindingValidForElement("clientWidth", "div"))
	assert.True(t, IsBindingValidForElement("clientWidth", "span"))
}
