package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/core"
)

func scoredRecords(n int) []core.ScoredRecord {
	records := make([]core.ScoredRecord, n)
	for i := range records {
		records[i].Title = "Sermon"
		records[i].MatchType = core.MatchTypeExact
	}
	return records
}

func TestSessionTranscript(t *testing.T) {
	s := newSession("s1", time.Hour)

	s.Append(RoleUser, "sermons on faith")
	s.Append(RoleAssistant, "Found 3 sermons")

	transcript := s.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, RoleUser, transcript[0].Role)
	assert.Equal(t, "sermons on faith", transcript[0].Content)
	assert.Equal(t, RoleAssistant, transcript[1].Role)

	t.Run("returned slice is a copy", func(t *testing.T) {
		transcript[0].Content = "mutated"
		assert.Equal(t, "sermons on faith", s.Transcript()[0].Content)
	})
}

func TestSessionRemember(t *testing.T) {
	t.Run("cursor starts at shown count", func(t *testing.T) {
		s := newSession("s1", time.Hour)
		s.Remember("faith", core.NewResultSet(scoredRecords(23)), 3)

		assert.Equal(t, 23, s.ResultCount())
		assert.Equal(t, 20, s.Remaining())

		batch := s.NextBatch(10)
		assert.Len(t, batch, 10)
		assert.Equal(t, 10, s.Remaining())
	})

	t.Run("new query replaces memory wholesale", func(t *testing.T) {
		s := newSession("s1", time.Hour)
		s.Remember("faith", core.NewResultSet(scoredRecords(23)), 10)
		s.Remember("grace", core.NewResultSet(scoredRecords(4)), 4)

		assert.Equal(t, "grace", s.LastQuery())
		assert.Equal(t, 4, s.ResultCount())
		assert.Equal(t, 0, s.Remaining())
	})

	t.Run("negative shown clamps to zero", func(t *testing.T) {
		s := newSession("s1", time.Hour)
		s.Remember("faith", core.NewResultSet(scoredRecords(5)), -1)
		assert.Equal(t, 5, s.Remaining())
	})
}

func TestSessionNextBatch(t *testing.T) {
	t.Run("no memory returns empty without error", func(t *testing.T) {
		s := newSession("s1", time.Hour)
		assert.Empty(t, s.NextBatch(10))
		assert.Equal(t, 0, s.Remaining())
	})

	t.Run("drains to empty past the end", func(t *testing.T) {
		s := newSession("s1", time.Hour)
		s.Remember("faith", core.NewResultSet(scoredRecords(13)), 10)

		assert.Len(t, s.NextBatch(10), 3)
		assert.Empty(t, s.NextBatch(10))
	})
}

func TestSessionClear(t *testing.T) {
	s := newSession("s1", time.Hour)
	s.Append(RoleUser, "sermons on faith")
	s.Remember("faith", core.NewResultSet(scoredRecords(5)), 0)

	s.Clear()

	assert.Empty(t, s.Transcript())
	assert.Empty(t, s.LastQuery())
	assert.Equal(t, 0, s.ResultCount())
	assert.Empty(t, s.NextBatch(10))
}

func TestSessionExpiry(t *testing.T) {
	s := newSession("s1", -time.Second)
	assert.True(t, s.Expired())

	s.Expire(time.Hour)
	assert.False(t, s.Expired())
}

func TestStoreEnsureSession(t *testing.T) {
	st := NewStore()

	t.Run("empty id allocates a fresh session", func(t *testing.T) {
		s := st.EnsureSession("", time.Hour)
		require.NotNil(t, s)
		assert.NotEmpty(t, s.ID())
	})

	t.Run("same id returns the same session", func(t *testing.T) {
		a := st.EnsureSession("fixed", time.Hour)
		b := st.EnsureSession("fixed", time.Hour)
		assert.Same(t, a, b)
	})

	t.Run("expired session is replaced", func(t *testing.T) {
		old := st.EnsureSession("stale", time.Nanosecond)
		time.Sleep(2 * time.Millisecond)
		fresh := st.EnsureSession("stale", time.Hour)
		assert.NotSame(t, old, fresh)
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		s := st.EnsureSession("defaulted", 0)
		assert.False(t, s.Expired())
	})
}

func TestStoreGetSession(t *testing.T) {
	st := NewStore()

	t.Run("unknown id", func(t *testing.T) {
		_, err := st.GetSession("missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("live session found", func(t *testing.T) {
		created := st.EnsureSession("live", time.Hour)
		got, err := st.GetSession("live")
		require.NoError(t, err)
		assert.Same(t, created, got)
	})

	t.Run("expired session purged on access", func(t *testing.T) {
		st.EnsureSession("gone", time.Nanosecond)
		time.Sleep(2 * time.Millisecond)
		_, err := st.GetSession("gone")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestStoreDropAndLen(t *testing.T) {
	st := NewStore()
	st.EnsureSession("a", time.Hour)
	st.EnsureSession("b", time.Hour)
	assert.Equal(t, 2, st.Len())

	st.Drop("a")
	assert.Equal(t, 1, st.Len())
}
