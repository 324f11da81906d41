package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRegistry_Complete(t *testing.T) {
	require.Len(t, FormatRegistry, 3)
	for format, info := range FormatRegistry {
		assert.Equal(t, format, info.Name)
		assert.NotEmpty(t, info.MIMEType)
		assert.NotEmpty(t, info.Extensions)
		assert.NotEmpty(t, info.Description)
	}
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, "application/json", info.MIMEType)
	assert.True(t, info.Encodes)

	info, ok = GetFormatInfo(FormatTagValue)
	require.True(t, ok)
	assert.False(t, info.Encodes)

	_, ok = GetFormatInfo(Format("rdf"))
	assert.False(t, ok)
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		format Format
		ok     bool
	}{
		{name: "tag-value", ext: ".spdx", format: FormatTagValue, ok: true},
		{name: "json", ext: ".json", format: FormatJSON, ok: true},
		{name: "yaml", ext: ".yaml", format: FormatYAML, ok: true},
		{name: "yml", ext: ".yml", format: FormatYAML, ok: true},
		{name: "without dot", ext: "json", format: FormatJSON, ok: true},
		{name: "upper case", ext: ".YAML", format: FormatYAML, ok: true},
		{name: "unknown", ext: ".xml", ok: false},
		{name: "empty", ext: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := FromExtension(tt.ext)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}
