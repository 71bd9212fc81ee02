// 包 writer 负责落盘：每个导入的帖子写出一对以 slug 命名的产物
// （<slug>.meta + <slug>.html），以及下游渲染管线消费的站点配置。
// 本层不做冲突检测，同名文件无条件覆盖——唯一性只由 slug 推导保证。
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go-gplus-import/internal/config"
	"go-gplus-import/internal/model"
)

// PostsDir 为输出目录下的帖子子目录名。
const PostsDir = "posts"

// Metadata 为元数据产物的持久化结构。
type Metadata struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"` // 恒为空
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"` // 原帖地址，可能为空
	HideTitle   bool     `yaml:"hidetitle"`
	Category    string   `yaml:"category"`
}

// WritePost 持久化一个帖子的元数据与内容产物。
func WritePost(outDir string, rec model.PostRecord) error {
	dir := filepath.Join(outDir, PostsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create posts dir %s: %w", dir, err)
	}
	meta := Metadata{
		Title:     rec.Title,
		Slug:      rec.Slug,
		Date:      rec.PostDate,
		Tags:      rec.Tags,
		Link:      rec.OriginalLink,
		HideTitle: rec.HideTitle,
		Category:  rec.Category,
	}
	b, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("marshal metadata %s: %w", rec.Slug, err)
	}
	if err := os.WriteFile(filepath.Join(dir, rec.Slug+".meta"), b, 0o644); err != nil {
		return fmt.Errorf("write metadata %s: %w", rec.Slug, err)
	}
	if err := os.WriteFile(filepath.Join(dir, rec.Slug+".html"), []byte(rec.Content), 0o644); err != nil {
		return fmt.Errorf("write content %s: %w", rec.Slug, err)
	}
	return nil
}

// SiteConf 为生成的站点配置（外部协作方：静态站点渲染管线）。
type SiteConf struct {
	Lang        string            `yaml:"lang"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	URL         string            `yaml:"url"`
	Email       string            `yaml:"email"`
	Author      string            `yaml:"author"`
	Navigation  map[string]string `yaml:"navigation"`
	Comments    bool              `yaml:"comments"` // 导入的归档站关闭评论
}

// WriteSiteConf 依据配置与样例帖子的作者信息生成 conf.yaml。
func WriteSiteConf(outDir string, site config.Site, author, profileURL string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	conf := SiteConf{
		Lang:        site.Lang,
		Title:       site.Title,
		Description: site.Descr,
		URL:         site.URL,
		Email:       site.Email,
		Author:      author,
		Navigation: map[string]string{
			"G+ profile":   profileURL,
			"Archives":     "/archive.html",
			"Share status": "/categories/index.html",
		},
	}
	b, err := yaml.Marshal(&conf)
	if err != nil {
		return fmt.Errorf("marshal site conf: %w", err)
	}
	path := filepath.Join(outDir, "conf.yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write site conf %s: %w", path, err)
	}
	return nil
}
