package service

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"pomodoro-tracker/internal/pomodoros/models"
	"pomodoro-tracker/internal/pomodoros/repository"

	"pomodoro-tracker/internal/shared/database"
)

func setupTestService(t *testing.T, pageSize, goal int) (*PomodoroService, *database.DB) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "service_test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	db, err := database.New(tmpFile.Name())
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(tmpFile.Name())
	})

	repo := repository.NewPomodoroRepository(db)
	return NewPomodoroService(repo, pageSize, goal), db
}

func seedAt(t *testing.T, db *database.DB, description string, ts time.Time) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO pomodoros (description, timestamp) VALUES (?, ?)",
		description, models.FormatRFC3339(ts),
	)
	require.NoError(t, err)
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	svc, _ := setupTestService(t, 100, 13000)

	for _, desc := range []string{"", "   ", "\t\n"} {
		_, err := svc.Add(&models.PomodoroCreate{Description: desc})
		require.Error(t, err, "description %q must be rejected", desc)
		assert.Contains(t, err.Error(), "validation error")
	}

	// The store must be untouched
	result, err := svc.GetPage("")
	require.NoError(t, err)
	assert.True(t, result.Empty)
}

func TestAdd_AssignsTimestampAndID(t *testing.T) {
	svc, _ := setupTestService(t, 100, 13000)

	before := time.Now().UTC().Add(-time.Second)
	record, err := svc.Add(&models.PomodoroCreate{Description: "deep work"})
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Second)

	assert.Greater(t, record.ID, int64(0))

	ts, err := time.Parse(time.RFC3339, record.Timestamp)
	require.NoError(t, err)
	assert.True(t, ts.After(before) && ts.Before(after), "timestamp must be server-assigned at insert time")
}

func TestGetPage_DefaultsAndClamping(t *testing.T) {
	svc, db := setupTestService(t, 100, 13000)

	now := time.Now().UTC()
	for i := 0; i < 250; i++ {
		seedAt(t, db, "row "+strconv.Itoa(i), now)
	}

	// Default page is the last page
	result, err := svc.GetPage("")
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 3, result.Page)
	assert.Len(t, result.Items, 50, "final page is partial")

	// page=0 clamps to 1
	result, err = svc.GetPage("0")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Items, 100)

	// page=99 clamps to 3
	result, err = svc.GetPage("99")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)

	// malformed behaves like absent
	result, err = svc.GetPage("not-a-number")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
}

func TestGetPage_EmptyStore(t *testing.T) {
	svc, _ := setupTestService(t, 100, 13000)

	result, err := svc.GetPage("5")
	require.NoError(t, err)
	assert.True(t, result.Empty)
	assert.Equal(t, 0, result.Page)
	assert.Equal(t, 0, result.TotalPages)
	assert.Empty(t, result.Items)
}

func TestGetPage_ReclampsAfterDeleteEmptiesLastPage(t *testing.T) {
	svc, db := setupTestService(t, 2, 13000)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedAt(t, db, "row", now)
	}

	// 5 rows at 2 per page: page 3 holds one row
	result, err := svc.GetPage("3")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	require.NoError(t, svc.Remove(result.Items[0].ID))

	// Requesting page 3 again must re-clamp to the new last page, 2
	result, err = svc.GetPage("3")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Items, 2)
}

func TestGetStats_WindowCounts(t *testing.T) {
	svc, db := setupTestService(t, 100, 13000)

	now := time.Now().UTC()
	seedAt(t, db, "ancient", now.Add(-400*24*time.Hour))
	seedAt(t, db, "last year", now.Add(-200*24*time.Hour))
	seedAt(t, db, "last month", now.Add(-20*24*time.Hour))
	seedAt(t, db, "this week", now.Add(-2*24*time.Hour))
	seedAt(t, db, "today", now.Add(-time.Hour))

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, 13000, stats.Goal)
	assert.Equal(t, int64(2), stats.Last7Days)
	assert.Equal(t, int64(3), stats.Last30Days)
	assert.Equal(t, int64(4), stats.Last365Days)
}

func TestGetStats_WindowsAreNested(t *testing.T) {
	svc, db := setupTestService(t, 100, 13000)

	now := time.Now().UTC()
	for i := 0; i < 12; i++ {
		seedAt(t, db, "row", now.Add(-time.Duration(i*40)*24*time.Hour))
	}

	stats, err := svc.GetStats()
	require.NoError(t, err)

	// One clock sample per render: the window counts must be consistent with
	// each other, never inverted.
	assert.LessOrEqual(t, stats.Last7Days, stats.Last30Days)
	assert.LessOrEqual(t, stats.Last30Days, stats.Last365Days)
	assert.LessOrEqual(t, stats.Last365Days, stats.Total)
}

func TestLastDescription_FollowsAdds(t *testing.T) {
	svc, _ := setupTestService(t, 100, 13000)

	desc, err := svc.LastDescription()
	require.NoError(t, err)
	assert.Equal(t, "", desc)

	_, err = svc.Add(&models.PomodoroCreate{Description: "first"})
	require.NoError(t, err)
	_, err = svc.Add(&models.PomodoroCreate{Description: "second"})
	require.NoError(t, err)

	desc, err = svc.LastDescription()
	require.NoError(t, err)
	assert.Equal(t, "second", desc)
}

// For any sequence of adds and removes, the total equals the number of adds
// minus the number of removes that hit a live row; removes of dead or unknown
// ids never change it.
func TestService_Property_CountLedger(t *testing.T) {
	svc, _ := setupTestService(t, 100, 13000)

	live := map[int64]bool{}
	expected := int64(0)

	rapid.Check(t, func(rt *rapid.T) {
		if rapid.Bool().Draw(rt, "add") {
			desc := rapid.StringMatching(`[a-zA-Z0-9 ]{1,40}`).Draw(rt, "desc")
			record, err := svc.Add(&models.PomodoroCreate{Description: desc})
			// Whitespace-only draws are rejected before the store; anything
			// else must land.
			if err != nil {
				return
			}
			live[record.ID] = true
			expected++
		} else {
			id := rapid.Int64Range(1, 64).Draw(rt, "id")
			err := svc.Remove(id)
			if err != nil {
				rt.Fatalf("remove must never fail: %v", err)
			}
			if live[id] {
				delete(live, id)
				expected--
			}
		}

		stats, err := svc.GetStats()
		if err != nil {
			rt.Fatalf("stats failed: %v", err)
		}
		if stats.Total != expected {
			rt.Fatalf("total = %d, expected %d after ledger replay", stats.Total, expected)
		}
	})
}
