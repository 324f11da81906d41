package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChecksumAlgorithm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ChecksumAlgorithm
		ok    bool
	}{
		{name: "sha1", input: "SHA1", want: SHA1, ok: true},
		{name: "sha3 family", input: "SHA3-384", want: SHA3_384, ok: true},
		{name: "blake2b family", input: "BLAKE2b-256", want: BLAKE2b256, ok: true},
		{name: "adler", input: "ADLER32", want: ADLER32, ok: true},
		{name: "lowercase is rejected", input: "sha1", ok: false},
		{name: "unknown algorithm", input: "CRC32", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseChecksumAlgorithm(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestChecksum_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Checksum{
		Algorithm: SHA1,
		Value:     "85ed0817af83a24ad8da68c2b5094de69833983c",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"algorithm": "SHA1",
		"checksumValue": "85ed0817af83a24ad8da68c2b5094de69833983c"
	}`, string(data))
}
