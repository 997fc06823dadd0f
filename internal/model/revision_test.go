package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeRevisionID(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    NodeRevisionID
		wantErr bool
	}{
		{"simple", "0.0.r1/17", NodeRevisionID{NodeID: "0", CopyID: "0", Rev: "1", Offset: "17"}, false},
		{"node with revision suffix", "6-12953.0.r12953/30623", NodeRevisionID{NodeID: "6-12953", CopyID: "0", Rev: "12953", Offset: "30623"}, false},
		{"copy id", "2-5.1-7.r5/0", NodeRevisionID{NodeID: "2-5", CopyID: "1-7", Rev: "5", Offset: "0"}, false},
		{"transaction id", "2-5.0.t5-1", NodeRevisionID{}, true},
		{"missing offset", "2-5.0.r5", NodeRevisionID{}, true},
		{"non-numeric offset", "2-5.0.r5/x", NodeRevisionID{}, true},
		{"non-numeric revision", "2-5.0.rX/1", NodeRevisionID{}, true},
		{"too few parts", "2-5/1", NodeRevisionID{}, true},
		{"empty node", ".0.r5/1", NodeRevisionID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNodeRevisionID(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestNodeRevisionID_WithOffset(t *testing.T) {
	id, err := ParseNodeRevisionID("2-5.0.r5/99")
	require.NoError(t, err)

	moved := id.WithOffset(25)
	assert.Equal(t, "2-5.0.r5/25", moved.String())
	assert.Equal(t, "99", id.Offset)
	assert.True(t, moved.SameNode(id))

	other, err := ParseNodeRevisionID("3-5.0.r5/99")
	require.NoError(t, err)
	assert.False(t, other.SameNode(id))
}

func TestDeltaRef_String(t *testing.T) {
	assert.Equal(t, "DELTA 12953 30403 20", DeltaRef{Rev: "12953", Offset: "30403", Size: "20"}.String())
}

func TestRevision_String(t *testing.T) {
	assert.Equal(t, "/srv/repo@r5", Revision{Repo: "/srv/repo", Number: "5"}.String())
}

func TestDiagnostic(t *testing.T) {
	assert.True(t, Diagnostic{}.Empty())

	d := Diagnostic{Source: SourceVerify, Lines: []string{"a", "b"}}
	assert.False(t, d.Empty())
	assert.Equal(t, "a\nb", d.Text())
}
