package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	s, err := NewHistoryStore(filepath.Join(t.TempDir(), "data", "selections.db"))
	require.NoError(t, err)
	return s
}

func TestSaveAndRecentSelections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSelection(ctx, "q1", "short_term_selection", "cn",
		[]string{"600519", "000001"}, "报告一"))
	require.NoError(t, s.SaveSelection(ctx, "q2", "short_term_selection", "cn",
		[]string{"300750"}, "报告二"))

	rows, err := s.RecentSelections(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "600519,000001", rowByQuery(rows, "q1").Codes)
	assert.Equal(t, 2, rowByQuery(rows, "q1").CodeCount)
	assert.Equal(t, "300750", rowByQuery(rows, "q2").Codes)
}

func TestSaveSelectionDuplicateQueryID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSelection(ctx, "q1", "short_term_selection", "cn", []string{"600519"}, "r"))
	assert.Error(t, s.SaveSelection(ctx, "q1", "short_term_selection", "cn", []string{"600519"}, "r"))
}

func TestCodeFrequency(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSelection(ctx, "q1", "s", "cn", []string{"600519", "000001"}, ""))
	require.NoError(t, s.SaveSelection(ctx, "q2", "s", "cn", []string{"600519"}, ""))
	require.NoError(t, s.SaveSelection(ctx, "q3", "s", "cn", []string{"300750", "600519"}, ""))

	stats, err := s.CodeFrequency(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, CodeStat{Code: "600519", Count: 3}, stats[0])
	// 次数相同时保持首次出现顺序
	assert.Equal(t, CodeStat{Code: "000001", Count: 1}, stats[1])
	assert.Equal(t, CodeStat{Code: "300750", Count: 1}, stats[2])
}

func rowByQuery(rows []SelectionModel, queryID string) SelectionModel {
	for _, r := range rows {
		if r.QueryID == queryID {
			return r
		}
	}
	return SelectionModel{}
}
