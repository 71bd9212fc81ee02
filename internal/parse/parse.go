// 包 parse 把单个帖子 HTML 文件解析为强类型的 model.ExportedPost。
// 导出格式固定，选择器是常量而非配置；可选块缺失时字段为 nil，不报错。
package parse

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"

	"go-gplus-import/internal/model"
)

// File 读取并解析一个帖子源文件。
func File(path string) (*model.ExportedPost, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open post %s: %w", path, err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse post html %s: %w", path, err)
	}
	return FromDocument(doc, path), nil
}

// FromDocument 从已解析的文档构造帖子快照。
func FromDocument(doc *goquery.Document, source string) *model.ExportedPost {
	p := &model.ExportedPost{
		SourceFile:  source,
		TitleMarkup: doc.Find("title").First().Text(),
	}

	// 帖子日期是页面上第 2 个链接，其 href 即原帖地址
	if a := doc.Find("a").Eq(1); a.Length() > 0 {
		p.PostDateText = a.Text()
		p.Permalink, _ = a.Attr("href")
	}

	p.Main = first(doc, "div.main-content")
	p.LinkEmbed = first(doc, "a.link-embed")
	doc.Find("a.media-link").Each(func(_ int, s *goquery.Selection) {
		p.MediaLinks = append(p.MediaLinks, s)
	})
	p.Album = first(doc, "div.album")
	p.HasVideo = doc.Find("div.video-placeholder").Length() > 0
	p.Visibility = first(doc, "div.visibility")
	p.Activity = first(doc, "div.post-activity")
	p.Comments = first(doc, "div.comments")

	if p.Visibility != nil {
		// 分享状态是可见性块的首个文本节点；其中的链接指向社区/合集等实体
		if c := p.Visibility.Contents().First(); c.Length() > 0 && goquery.NodeName(c) == "#text" {
			p.VisibilityLabel = c.Text()
		}
		if a := p.Visibility.Find("a").First(); a.Length() > 0 {
			p.HasVisLink = true
			p.VisibilityText = a.Text()
			p.VisibilityHref, _ = a.Attr("href")
		}
	}
	return p
}

// SiteSample 从任一帖子抽取作者名与资料页链接，用于生成站点配置。
func SiteSample(path string) (author, profileURL string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("open post %s: %w", path, err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", "", fmt.Errorf("parse post html %s: %w", path, err)
	}
	author = doc.Find("a.author").First().Text()
	profileURL, _ = doc.Find("a").First().Attr("href")
	return author, profileURL, nil
}

// first 返回首个匹配的选区；零匹配返回 nil。
func first(doc *goquery.Document, selector string) *goquery.Selection {
	if s := doc.Find(selector).First(); s.Length() > 0 {
		return s
	}
	return nil
}
