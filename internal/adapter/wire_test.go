package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "playground.dev/pkg/playground/internal/model"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    m.Event
		wantErr error
	}{
		{
			name: "modify file",
			raw:  `{"command":"modify_file","content":{"root_path":"/p","name":"/p/a.yaml","content":"x: 1"}}`,
			want: m.ModifyFile{Root: "/p", Name: "/p/a.yaml", Content: m.Content("x: 1")},
		},
		{
			name: "modify file with null content deletes",
			raw:  `{"command":"modify_file","content":{"root_path":"/p","name":"/p/a.yaml","content":null}}`,
			want: m.ModifyFile{Root: "/p", Name: "/p/a.yaml"},
		},
		{
			name: "add project",
			raw:  `{"command":"add_project","content":{"root_path":"/p","files":{"/p/a.yaml":"x"}}}`,
			want: m.AddProject{Root: "/p", Files: m.FileSet{"/p/a.yaml": "x"}},
		},
		{
			name: "add project without files",
			raw:  `{"command":"add_project","content":{"root_path":"/p"}}`,
			want: m.AddProject{Root: "/p", Files: m.FileSet{}},
		},
		{
			name: "remove project",
			raw:  `{"command":"remove_project","content":{"root_path":"/p"}}`,
			want: m.RemoveProject{Root: "/p"},
		},
		{
			name:    "unknown command",
			raw:     `{"command":"rename_file","content":{}}`,
			wantErr: ErrUnknownCommand,
		},
		{
			name:    "missing root",
			raw:     `{"command":"remove_project","content":{}}`,
			wantErr: ErrMissingRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.raw))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEvent_Malformed(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`{"command":"modify_file"}`,
		`{"command":"add_project","content":"text"}`,
	} {
		_, err := DecodeEvent([]byte(raw))
		assert.Errorf(t, err, "DecodeEvent(%s) should fail", raw)
	}
}

func TestEncodeEvent_DecodesBack(t *testing.T) {
	events := []m.Event{
		m.ModifyFile{Root: "/p", Name: "/p/a.yaml", Content: m.Content("")},
		m.ModifyFile{Root: "/p", Name: "/p/a.yaml"},
		m.AddProject{Root: "/p", Files: m.FileSet{"/p/a.yaml": "a", "/p/b.toml": "b"}},
		m.RemoveProject{Root: "/p"},
	}

	for _, ev := range events {
		msg, err := EncodeEvent(ev)
		require.NoError(t, err)

		raw, err := msg.Marshal()
		require.NoError(t, err)

		got, err := DecodeEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}
}

func TestEncodeEvent_NullContentIsOmitted(t *testing.T) {
	msg, err := EncodeEvent(m.ModifyFile{Root: "/p", Name: "/p/a.yaml"})
	require.NoError(t, err)

	assert.Equal(t, CommandModifyFile, msg.Command)
	assert.JSONEq(t, `{"root_path":"/p","name":"/p/a.yaml"}`, string(msg.Content))
}

func TestEncodeEvent_Nil(t *testing.T) {
	_, err := EncodeEvent(nil)
	require.ErrorIs(t, err, ErrUnknownCommand)
}
