package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSignature(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "colon separated", input: "1A:92:D7:89:8F:16:C4:D3:46:E2:6D:C5:0C:2F:42:B0", want: "1A92D7898F16C4D346E26DC50C2F42B0"},
		{name: "plain lowercase", input: "454efd5887c227d25e12f4c67fca5310", want: "454EFD5887C227D25E12F4C67FCA5310"},
		{name: "surrounding spaces", input: "  454EFD5887C227D25E12F4C67FCA5310\n", want: "454EFD5887C227D25E12F4C67FCA5310"},
		{name: "too short", input: "1A:92", wantErr: true},
		{name: "sha256 length", input: "9bed9c8509bf0fccf17e2fc1264be7972aa10d1bc2aa9a5d4fed9e10382e4cae", wantErr: true},
		{name: "not hex", input: "ZZ4EFD5887C227D25E12F4C67FCA5310", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSignature(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSignature)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSignatures_StopsOnFirstError(t *testing.T) {
	_, err := NormalizeSignatures([]string{"1A92D7898F16C4D346E26DC50C2F42B0", "bad"})
	assert.ErrorIs(t, err, ErrInvalidSignature)

	got, err := NormalizeSignatures(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "MainSecrets", TypeName("main"))
	assert.Equal(t, "MainSecrets", TypeName(""))
	assert.Equal(t, "Secrets", TypeName("dev"))
	assert.Equal(t, "Secrets", TypeName("prod"))
}

func TestGetterName(t *testing.T) {
	assert.Equal(t, "GetApiKey1", GetterName("apiKey1"))
	assert.Equal(t, "GetApiKey1", GetterName("ApiKey1"))
	assert.Equal(t, "GetÉclair", GetterName("éclair"))
	assert.Equal(t, "Get", GetterName(""))
}
