// 包 transform 负责内容改写：修复导出过程打断的媒体引用、
// 赋予标签，并按固定顺序把结构块拼接为最终内容。
package transform

import (
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-gplus-import/internal/logx"
	"go-gplus-import/internal/media"
	"go-gplus-import/internal/model"
)

// ImagesDir 为规范媒体库目录名；改写后的引用一律指向这里。
const ImagesDir = "images"

// Apply 对已通过分类的帖子执行内容改写，返回 (标签集合, 拼接内容)。
// 媒体链接缺失 href/src 属性时记录警告并保留原状，不中断帖子处理。
func Apply(p *model.ExportedPost) ([]string, string) {
	var tags []string

	if p.HasVideo {
		tags = addTag(tags, "video")
	}

	for _, link := range p.MediaLinks {
		tags = rewriteMediaLink(link, tags)
		// 链接里嵌套的 p 标签是正文的重复文案，直接丢弃；不存在也无妨
		link.Find("p").Remove()
	}

	// 多个媒体链接仅出现在相册里，正文至多保留一个代表项
	var represent *goquery.Selection
	if len(p.MediaLinks) > 0 {
		represent = p.MediaLinks[0]
	}
	if p.Album != nil {
		// 相册块自带图集，代表项不再需要
		tags = addTag(tags, "photo_album")
		represent = nil
	}
	if p.LinkEmbed != nil {
		// 外链元数据优先于代表项
		tags = addTag(tags, "link")
		represent = nil
	}

	var b strings.Builder
	for _, part := range []*goquery.Selection{
		p.Main,
		p.LinkEmbed,
		p.Album,
		represent,
		p.Visibility,
		p.Activity,
		p.Comments,
	} {
		if part == nil {
			continue
		}
		html, err := goquery.OuterHtml(part)
		if err != nil {
			logx.Warnf("渲染内容块失败：%v", err)
			continue
		}
		b.WriteString("\n")
		b.WriteString(html)
		b.WriteString("\n")
	}
	return tags, b.String()
}

// rewriteMediaLink 把本地媒体引用改写为规范媒体库路径。
// 外部链接（http 前缀）原样保留。
func rewriteMediaLink(link *goquery.Selection, tags []string) []string {
	href, ok := link.Attr("href")
	if !ok {
		logx.Warnf("媒体链接缺少 href 属性，跳过改写")
		return tags
	}
	if strings.HasPrefix(href, "http") {
		return tags
	}
	filename := media.CanonicalName(href)
	target := path.Join("..", "..", ImagesDir, filename)
	link.SetAttr("href", target)
	tags = addTag(tags, "photo")
	if img := link.Find("img").First(); img.Length() > 0 {
		img.SetAttr("src", target)
	} else {
		logx.Warnf("媒体链接缺少嵌套图片，src 未改写（href=%s）", href)
	}
	return tags
}

// addTag 去重追加（标签是集合，插入顺序无语义）。
func addTag(tags []string, t string) []string {
	for _, v := range tags {
		if v == t {
			return tags
		}
	}
	return append(tags, t)
}
