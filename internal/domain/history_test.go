package domain

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
)

// revFixture builds a revision file and remembers where things landed.
type revFixture struct {
	b       strings.Builder
	offsets map[string]int
}

func newRevFixture() *revFixture {
	return &revFixture{offsets: map[string]int{}}
}

func (f *revFixture) rep(name, header, payload string) *revFixture {
	f.offsets[name] = f.b.Len()
	f.b.WriteString(header + "\n" + payload + "ENDREP\n")

	return f
}

func (f *revFixture) nodeRev(name, storedID string) *revFixture {
	f.offsets[name] = f.b.Len()
	f.b.WriteString("id: " + storedID + "\ntype: file\ncount: 0\ntext: 5 0 12 12 abc\ncpath: /trunk/" + name + "\n\n")

	return f
}

func (f *revFixture) String() string {
	return f.b.String()
}

func TestHistory_FindGoodID(t *testing.T) {
	fixture := newRevFixture().
		rep("text", "PLAIN", "hello world\n").
		nodeRev("a", "2-5.0.r5/99").
		nodeRev("b", "3-5.0.r5/120")

	repo := newTestRepo(t, map[string]string{"5": fixture.String()})
	history := NewHistory(adapter.NewLocalRevisionFSAdapter())

	t.Run("offset taken from node-revision header", func(t *testing.T) {
		good, err := history.FindGoodID(context.Background(), repo, "2-5.0.r5/99")
		require.NoError(t, err)
		assert.Equal(t, "2-5.0.r5/"+strconv.Itoa(fixture.offsets["a"]), good)
	})

	t.Run("other nodes are ignored", func(t *testing.T) {
		good, err := history.FindGoodID(context.Background(), repo, "3-5.0.r5/1")
		require.NoError(t, err)
		assert.Equal(t, "3-5.0.r5/"+strconv.Itoa(fixture.offsets["b"]), good)
	})

	t.Run("unknown node", func(t *testing.T) {
		_, err := history.FindGoodID(context.Background(), repo, "9-5.0.r5/99")
		require.ErrorIs(t, err, ErrOracle)
		assert.True(t, IsFixError(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := history.FindGoodID(context.Background(), repo, "abc")
		require.ErrorIs(t, err, ErrOracle)
	})

	t.Run("missing revision file is not a fix error", func(t *testing.T) {
		_, err := history.FindGoodID(context.Background(), repo, "2-6.0.r6/10")
		require.Error(t, err)
		assert.False(t, IsFixError(err))
	})
}

func TestHistory_FindGoodID_Ambiguous(t *testing.T) {
	fixture := newRevFixture().
		nodeRev("a", "2-5.0.r5/0").
		nodeRev("copy", "2-5.0.r5/0")

	repo := newTestRepo(t, map[string]string{"5": fixture.String()})

	_, err := NewHistory(adapter.NewLocalRevisionFSAdapter()).FindGoodID(context.Background(), repo, "2-5.0.r5/7")
	require.ErrorIs(t, err, ErrOracle)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestHistory_FindGoodRepHeader(t *testing.T) {
	fixture := newRevFixture().
		rep("plain", "PLAIN", "hello world\n").
		rep("delta", "DELTA 3 10 8", strings.Repeat("x", 20)).
		rep("self", "DELTA", "SVN\x00\x00\x01\x02").
		nodeRev("a", "2-5.0.r5/0")

	repo := newTestRepo(t, map[string]string{"5": fixture.String()})
	history := NewHistory(adapter.NewLocalRevisionFSAdapter())

	tests := []struct {
		name string
		size string
		want int
	}{
		{"plain representation", "12", fixture.offsets["plain"]},
		{"delta against other revision", "20", fixture.offsets["delta"]},
		{"self-contained delta", "7", fixture.offsets["self"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := history.FindGoodRepHeader(context.Background(), repo, "5", tt.size)
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(tt.want), got)
		})
	}

	t.Run("no representation of that size", func(t *testing.T) {
		_, err := history.FindGoodRepHeader(context.Background(), repo, "5", "3")
		require.ErrorIs(t, err, ErrOracle)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := history.FindGoodRepHeader(context.Background(), repo, "5", "-1")
		require.ErrorIs(t, err, ErrOracle)
	})
}

func TestHistory_FindGoodRepHeader_Ambiguous(t *testing.T) {
	fixture := newRevFixture().
		rep("one", "PLAIN", "abc\n").
		rep("two", "PLAIN", "xyz\n")

	repo := newTestRepo(t, map[string]string{"5": fixture.String()})

	_, err := NewHistory(adapter.NewLocalRevisionFSAdapter()).FindGoodRepHeader(context.Background(), repo, "5", "4")
	require.ErrorIs(t, err, ErrOracle)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestIsRepHeader(t *testing.T) {
	assert.True(t, isRepHeader([]byte("PLAIN")))
	assert.True(t, isRepHeader([]byte("DELTA")))
	assert.True(t, isRepHeader([]byte("DELTA 5 100 20")))
	assert.False(t, isRepHeader([]byte("DELTA 5 100")))
	assert.False(t, isRepHeader([]byte("DELTA 5 x 20")))
	assert.False(t, isRepHeader([]byte("ENDREP")))
	assert.False(t, isRepHeader([]byte("id: 0.0.r5/0")))
}
