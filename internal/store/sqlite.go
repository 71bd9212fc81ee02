// 包 store 提供导入清单存储（SQLite）：记录每次运行导入/跳过的帖子
// 与媒体归并动作，供重复运行审计，不参与核心决策。
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"go-gplus-import/internal/model"
)

// SQLite 封装 *sql.DB，基于 modernc.org/sqlite（纯 Go 实现）。
type SQLite struct {
	db *sql.DB
}

// OpenSQLite 打开清单数据库并执行自动迁移。
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// migrate 执行建表语句，保持幂等。
func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS posts (
            slug TEXT UNIQUE,
            title TEXT,
            date TEXT,
            category TEXT,
            tags TEXT,
            link TEXT,
            source_file TEXT,
            created_at TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS skips (
            source_file TEXT UNIQUE,
            reason TEXT,
            label TEXT,
            created_at TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS media (
            canonical_name TEXT UNIQUE,
            source_path TEXT,
            action TEXT,
            created_at TIMESTAMP
        );`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("exec migrate: %w", err)
		}
	}
	return nil
}

// Reset 清空清单数据表（不删除数据库文件）。
func (s *SQLite) Reset(ctx context.Context) error {
	for _, table := range []string{"posts", "skips", "media"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

// RecordPost 记录一个已导入的帖子（slug 唯一，后写者覆盖——与落盘策略一致）。
func (s *SQLite) RecordPost(ctx context.Context, rec model.PostRecord) error {
	if rec.Slug == "" {
		return errors.New("record.slug required")
	}
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags %s: %w", rec.Slug, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO posts(slug, title, date, category, tags, link, source_file, created_at)
        VALUES(?,?,?,?,?,?,?,?)
        ON CONFLICT(slug) DO UPDATE SET title=excluded.title, date=excluded.date, category=excluded.category,
            tags=excluded.tags, link=excluded.link, source_file=excluded.source_file`,
		rec.Slug, rec.Title, rec.PostDate, rec.Category, string(tags), rec.OriginalLink, rec.SourceFile, nowOr(rec.CreatedAt))
	if err != nil {
		return fmt.Errorf("record post %s: %w", rec.Slug, err)
	}
	return nil
}

// RecordSkip 记录一个被跳过的帖子及原因。
func (s *SQLite) RecordSkip(ctx context.Context, sourceFile, reason, label string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO skips(source_file, reason, label, created_at)
        VALUES(?,?,?,?)
        ON CONFLICT(source_file) DO UPDATE SET reason=excluded.reason, label=excluded.label`,
		sourceFile, reason, label, time.Now())
	if err != nil {
		return fmt.Errorf("record skip %s: %w", sourceFile, err)
	}
	return nil
}

// RecordMedia 记录一次媒体归并动作（规范名唯一）。
func (s *SQLite) RecordMedia(ctx context.Context, asset model.MediaAsset, action string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO media(canonical_name, source_path, action, created_at)
        VALUES(?,?,?,?)
        ON CONFLICT(canonical_name) DO UPDATE SET source_path=excluded.source_path, action=excluded.action`,
		asset.CanonicalName, asset.SourcePath, action, time.Now())
	if err != nil {
		return fmt.Errorf("record media %s: %w", asset.CanonicalName, err)
	}
	return nil
}

// ListPosts 返回清单中的全部帖子记录，按 slug 排序。
func (s *SQLite) ListPosts(ctx context.Context) ([]model.PostRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, title, date, category, tags, COALESCE(link,''), source_file, created_at FROM posts ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()
	var out []model.PostRecord
	for rows.Next() {
		var rec model.PostRecord
		var tags string
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.Slug, &rec.Title, &rec.PostDate, &rec.Category, &tags, &rec.OriginalLink, &rec.SourceFile, &createdAt); err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags %s: %w", rec.Slug, err)
			}
		}
		if createdAt.Valid {
			rec.CreatedAt = createdAt.Time
		} else {
			rec.CreatedAt = time.Now()
		}
		rec.HideTitle = true
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

// Stats 统计汇总：导入/跳过帖子数与媒体归并计数。
func (s *SQLite) Stats(ctx context.Context) (model.ImportStats, error) {
	var st model.ImportStats
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM posts`).Scan(&st.Imported); err != nil {
		return st, fmt.Errorf("count posts: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM skips`).Scan(&st.Skipped); err != nil {
		return st, fmt.Errorf("count skips: %w", err)
	}
	st.PostsTotal = st.Imported + st.Skipped
	counts := map[string]*int{
		"copied":  &st.MediaCopied,
		"renamed": &st.MediaRenamed,
		"skipped": &st.MediaSkipped,
	}
	for action, dst := range counts {
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM media WHERE action = ?`, action).Scan(dst); err != nil {
			return st, fmt.Errorf("count media %s: %w", action, err)
		}
	}
	st.UpdatedAt = time.Now()
	return st, nil
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
