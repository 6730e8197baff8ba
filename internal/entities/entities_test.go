package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeNamedEntities(t *testing.T) {
	assert.Equal(t, "&", Decode("&amp;", false))
	assert.Equal(t, "<", Decode("&lt;", false))
	assert.Equal(t, ">", Decode("&gt;", false))
	assert.Equal(t, " ", Decode("&nbsp;", false))
	assert.Equal(t, "\"", Decode("&quot;", false))
}

func TestDecodeNumericEntities(t *testing.T) {
	assert.Equal(t, "A", Decode("&#65;", false))
	assert.Equal(t, "A", Decode("&#x41;", false))
	assert.Equal(t, "A", Decode("&#x41", false))
	assert.Equal(t, "a", Decode("&#97;", false))
}

func TestDecodeValidateCodeLF(t *testing.T) {
	assert.Equal(t, " ", Decode("&#10;", false))
}

func TestDecodeValidateCodeWindows1252(t *testing.T) {
	assert.Equal(t, "€", Decode("&#128;", false))
}

func TestDecodeNoSemicolonEntities(t *testing.T) {
	assert.Equal(t, "&", Decode("&amp", false))
	assert.Equal(t, "<", Decode("&lt", false))
	assert.Equal(t, "¬", Decode("&not", false))
}

func TestDecodeAttributeValueNoSemicolon(t *testing.T) {
	assert.Equal(t, "&notit", Decode("&notit", true))
}

func TestDecodeNoAmpersandReturnsUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", Decode("plain text", false))
}
