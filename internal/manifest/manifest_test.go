package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Manifest
		wantErr string
	}{
		{
			name: "version only",
			data: `{"version":"2.3.1"}`,
			want: Manifest{Version: "2.3.1"},
		},
		{
			name: "full manifest",
			data: `{"name":"@scope/pkg","version":"1.0.0-beta.2","private":true,"scripts":{"build":"tsc"}}`,
			want: Manifest{Name: "@scope/pkg", Version: "1.0.0-beta.2", Private: true},
		},
		{
			name:    "not json",
			data:    "not json at all",
			wantErr: "parsing manifest",
		},
		{
			name:    "missing version",
			data:    `{"name":"pkg"}`,
			wantErr: "missing version field",
		},
		{
			name:    "not a semantic version",
			data:    `{"version":"latest"}`,
			wantErr: "is not a semantic version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse("package.json", []byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)

				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "package.json", parseErr.Path)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, *m)
		})
	}
}
