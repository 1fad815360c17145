package analysis

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(t *testing.T, name, ts string, kind punch.Kind, op punch.Op) punch.Record {
	t.Helper()
	parsed, err := time.Parse(punch.TimestampLayout, ts)
	require.NoError(t, err)
	return punch.Record{EmployeeName: name, Timestamp: parsed, Kind: kind, Op: op}
}

func TestFilter_DropsPunchesInsideWindow(t *testing.T) {
	// Two punches 2 minutes apart, same kind and op, window 5 minutes:
	// only the first survives.
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 08:02:00", punch.KindIn, punch.OpIn),
	}

	got := Filter(records, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-10 08:00:00", got[0].Timestamp.Format(punch.TimestampLayout))
}

func TestFilter_ComparesAgainstLastKeptRecord(t *testing.T) {
	// Four identical punches within a 5-minute window of each other. The
	// comparison base is the last KEPT record, so the whole chain collapses
	// until a punch lands more than 5 minutes after the first survivor.
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 08:03:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 08:05:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 08:06:00", punch.KindIn, punch.OpIn),
	}

	got := Filter(records, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-10 08:00:00", got[0].Timestamp.Format(punch.TimestampLayout))
	assert.Equal(t, "2025-03-10 08:06:00", got[1].Timestamp.Format(punch.TimestampLayout))
}

func TestFilter_KeepsDifferentKindOrOpInsideWindow(t *testing.T) {
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-10 12:01:00", punch.KindBreak, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:02:00", punch.KindOut, punch.OpOut),
	}

	got := Filter(records, 5)

	assert.Len(t, got, 3)
}

func TestFilter_SortsUnorderedInput(t *testing.T) {
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
	}

	got := Filter(records, 5)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Timestamp.Before(got[i].Timestamp))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 08:02:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-10 13:00:00", punch.KindBreak, punch.OpIn),
		rec(t, "Ana", "2025-03-10 17:01:00", punch.KindOut, punch.OpOut),
	}

	once := Filter(records, 5)
	twice := Filter(once, 5)

	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(records))
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, 5))
}
