// Package store persists selection runs in a local SQLite database.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SelectionModel 是一次选股运行的落库记录。
type SelectionModel struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	QueryID       string `gorm:"column:query_id;uniqueIndex"`
	Strategy      string `gorm:"column:strategy"`
	Market        string `gorm:"column:market"`
	Codes         string `gorm:"column:codes"`
	CodeCount     int    `gorm:"column:code_count"`
	ReportChars   int    `gorm:"column:report_chars"`
	Report        string `gorm:"column:report"`
	CreatedAtUnix int64  `gorm:"column:created_at"`
}

func (SelectionModel) TableName() string { return "selections" }

// CodeStat 是某只代码的历史入选次数。
type CodeStat struct {
	Code  string
	Count int
}

// HistoryStore 基于 Gorm + SQLite 记录选股历史。
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore 打开（必要时创建）历史库。
func NewHistoryStore(path string) (*HistoryStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("history store: 路径不能为空")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SelectionModel{}); err != nil {
		return nil, err
	}
	return &HistoryStore{db: db}, nil
}

// SaveSelection 记录一次成功的选股运行。
func (s *HistoryStore) SaveSelection(ctx context.Context, queryID, strategy, market string, codes []string, report string) error {
	rec := SelectionModel{
		QueryID:       queryID,
		Strategy:      strategy,
		Market:        market,
		Codes:         strings.Join(codes, ","),
		CodeCount:     len(codes),
		ReportChars:   len(report),
		Report:        report,
		CreatedAtUnix: time.Now().Unix(),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// RecentSelections 按时间倒序返回最近 limit 次运行。
func (s *HistoryStore) RecentSelections(ctx context.Context, limit int) ([]SelectionModel, error) {
	if limit <= 0 {
		limit = 30
	}
	var out []SelectionModel
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CodeFrequency 统计历史上每只代码的入选次数，按次数降序。
func (s *HistoryStore) CodeFrequency(ctx context.Context) ([]CodeStat, error) {
	var rows []SelectionModel
	if err := s.db.WithContext(ctx).Select("codes").Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	order := make([]string, 0, 64)
	for _, row := range rows {
		for _, code := range strings.Split(row.Codes, ",") {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			if _, ok := counts[code]; !ok {
				order = append(order, code)
			}
			counts[code]++
		}
	}
	stats := make([]CodeStat, 0, len(order))
	for _, code := range order {
		stats = append(stats, CodeStat{Code: code, Count: counts[code]})
	}
	// 次数相同保持首次出现顺序
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
