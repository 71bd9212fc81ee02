// 包 model 定义导入流程的数据模型（帖子快照/可见性目标/分类结果/媒体资产/输出记录）。
package model

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// EntityKind 为可见性链接指向的实体类型。
type EntityKind string

const (
	EntityCommunity  EntityKind = "community"
	EntityCollection EntityKind = "collection"
	EntityEvent      EntityKind = "event"
	EntityCircle     EntityKind = "circle"
	EntityProfile    EntityKind = "profile"
)

// ExportedPost 表示一个解析后的帖子快照：每个源文件构造一次，
// 供分类与内容改写消费；可选块缺失时为 nil，不作为错误处理。
type ExportedPost struct {
	SourceFile   string
	TitleMarkup  string // 原始标题片段，可能内嵌字面 HTML
	PostDateText string
	Permalink    string // 原帖链接；原帖已删除时被清空

	Main       *goquery.Selection // div.main-content
	LinkEmbed  *goquery.Selection // a.link-embed
	MediaLinks []*goquery.Selection
	Album      *goquery.Selection // div.album
	HasVideo   bool               // div.video-placeholder 存在
	Visibility *goquery.Selection // div.visibility 整块（拼接内容时使用）
	Activity   *goquery.Selection // div.post-activity
	Comments   *goquery.Selection // div.comments

	// 可见性首个文本节点与其中的链接（可选）
	VisibilityLabel string
	VisibilityHref  string
	VisibilityText  string
	HasVisLink      bool
}

// VisibilityTarget 为从可见性块派生的分享目标：
// 标签文本加上可选的 (实体类型, 实体名称)。
type VisibilityTarget struct {
	Label     string
	Kind      EntityKind
	Name      string
	HasEntity bool
}

// Category 为分类结果：要么是标签字符串，要么是跳过决定（二选一）。
type Category struct {
	Label      string
	Skip       bool
	SkipReason string
}

// Skipped 构造跳过结果。
func Skipped(reason string) Category { return Category{Skip: true, SkipReason: reason} }

// Labeled 构造正常分类结果。
func Labeled(label string) Category { return Category{Label: label} }

// MediaAsset 表示导出树中一个被识别的媒体文件。
type MediaAsset struct {
	SourcePath    string `json:"source_path"`
	CanonicalName string `json:"canonical_name"`
	Exists        bool   `json:"exists"` // 目标库中同名文件已存在
}

// PostRecord 为最终输出单元，命名其元数据与内容两个产物。
type PostRecord struct {
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	PostDate     string    `json:"date"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Content      string    `json:"-"`
	OriginalLink string    `json:"link,omitempty"`
	HideTitle    bool      `json:"hidetitle"` // 恒为 true
	SourceFile   string    `json:"source_file"`
	CreatedAt    time.Time `json:"created_at"`
}

// ImportStats 为一次导入运行的汇总统计。
type ImportStats struct {
	PostsTotal   int       `json:"posts_total"`
	Imported     int       `json:"imported"`
	Skipped      int       `json:"skipped"`
	MediaCopied  int       `json:"media_copied"`
	MediaRenamed int       `json:"media_renamed"`
	MediaSkipped int       `json:"media_skipped"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Report 为导入报告 report.json 的顶层结构。
type Report struct {
	Stats ImportStats  `json:"stats"`
	Posts []PostRecord `json:"posts"`
}
