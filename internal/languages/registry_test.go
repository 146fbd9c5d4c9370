package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_EmbeddedCatalog(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.True(t, r.IsSupported("bo"))
	assert.True(t, r.IsSupported("en"))
	assert.False(t, r.IsSupported("xx"))
	assert.False(t, r.IsSupported(""))

	list := r.List()
	require.NotEmpty(t, list)
	assert.Equal(t, "bo", list[0].Code)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid",
			yaml: "languages:\n  - code: en\n    name: English\n",
		},
		{
			name:    "missing code",
			yaml:    "languages:\n  - name: English\n",
			wantErr: true,
		},
		{
			name:    "duplicate code",
			yaml:    "languages:\n  - code: en\n  - code: en\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			yaml:    "languages: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lang, ok := r.Get("en")
			assert.True(t, ok)
			assert.Equal(t, "English", lang.Name)
		})
	}
}
