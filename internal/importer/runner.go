// 包 importer 负责主流程编排：
// - 导入模式：扫描 → 解析 → 分类 → 改写 → 推导 slug → 落盘，最后归并媒体库
// - 分析模式：只跑分类器，打印按实体类型分组的标签频次表，不做任何写入
// 全程单线程顺序执行；帖子级跳过与字段级降级不中断运行，仅致命条件终止。
package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"go-gplus-import/internal/classify"
	"go-gplus-import/internal/config"
	"go-gplus-import/internal/logx"
	"go-gplus-import/internal/media"
	"go-gplus-import/internal/model"
	"go-gplus-import/internal/parse"
	"go-gplus-import/internal/scan"
	"go-gplus-import/internal/slugify"
	"go-gplus-import/internal/store"
	"go-gplus-import/internal/title"
	"go-gplus-import/internal/transform"
	"go-gplus-import/internal/writer"
)

// Runner 导入执行器，持有配置/分类器/清单存储与输入输出目录。
type Runner struct {
	cfg     *config.Config
	cls     *classify.Classifier
	store   *store.SQLite // nil 表示不记录清单
	takeout string        // 导出包所在目录（其下为 GTO.root）
	out     string        // 输出站点目录

	stats   model.ImportStats
	records []model.PostRecord
}

// New 创建 Runner。
func New(cfg *config.Config, st *store.SQLite, takeoutDir, outDir string) *Runner {
	return &Runner{
		cfg:     cfg,
		cls:     classify.New(cfg),
		store:   st,
		takeout: takeoutDir,
		out:     outDir,
	}
}

// Run 执行一次完整导入。返回的错误均为致命条件（终止整个运行）。
func (r *Runner) Run(ctx context.Context) error {
	files, err := r.listPosts()
	if err != nil {
		return err
	}
	logx.Infof("%d 篇帖子待导入", len(files))

	// 站点配置：任取一篇帖子即可，作者与资料页在所有帖子里相同
	author, profileURL, err := parse.SiteSample(files[0])
	if err != nil {
		return fmt.Errorf("sample post: %w", err)
	}
	if err := writer.WriteSiteConf(r.out, r.cfg.Site, author, profileURL); err != nil {
		return err
	}

	r.stats.PostsTotal = len(files)
	for _, f := range files {
		if err := r.importOne(ctx, f); err != nil {
			return err
		}
	}

	// 导出包里图片链接指向的是归档根目录，文件实际散落各处（死链），
	// 统一归并到媒体库目录
	mstats, err := media.Reconcile(
		filepath.Join(r.takeout, r.cfg.Takeout.Root),
		filepath.Join(r.out, transform.ImagesDir),
		r.mediaObserver(ctx),
	)
	if err != nil {
		return err
	}
	r.stats.MediaCopied = mstats.Copied
	r.stats.MediaRenamed = mstats.Renamed
	r.stats.MediaSkipped = mstats.Skipped
	r.stats.UpdatedAt = time.Now()
	logx.Infof("媒体归并完成：复制=%d 改名=%d 跳过=%d", mstats.Copied, mstats.Renamed, mstats.Skipped)
	return nil
}

// importOne 处理单篇帖子：跳过与降级在此消化，仅致命条件向上返回。
func (r *Runner) importOne(ctx context.Context, path string) error {
	post, err := parse.File(path)
	if err != nil {
		return err
	}
	target, cat := r.cls.Classify(post)
	if cat.Skip {
		logx.Warnf("帖子将被忽略（%s）：%s", cat.SkipReason, path)
		r.stats.Skipped++
		if r.store != nil {
			if err := r.store.RecordSkip(ctx, path, cat.SkipReason, target.Label); err != nil {
				logx.Warnf("写入跳过记录失败：%v", err)
			}
		}
		return nil
	}

	tags, content := transform.Apply(post)
	t := title.Prettify(post.TitleMarkup)
	slug := slugify.ForPost(post.PostDateText, t)
	if slug == "" {
		// 本不该发生；一旦发生则中止整个运行，不做部分重试
		return fmt.Errorf("empty slug for post %s (title %q)", path, t)
	}

	rec := model.PostRecord{
		Title:        t,
		Slug:         slug,
		PostDate:     post.PostDateText,
		Category:     cat.Label,
		Tags:         tags,
		Content:      content,
		OriginalLink: post.Permalink,
		HideTitle:    true,
		SourceFile:   path,
		CreatedAt:    time.Now(),
	}
	if err := writer.WritePost(r.out, rec); err != nil {
		return err
	}
	r.records = append(r.records, rec)
	r.stats.Imported++
	if r.store != nil {
		if err := r.store.RecordPost(ctx, rec); err != nil {
			logx.Warnf("写入清单失败：%v", err)
		}
	}
	logx.Infof("已导入帖子，分享状态：%s", cat.Label)
	return nil
}

// Analyze 只运行分类器并打印标签频次表（按实体类型分组），帮助调整过滤配置。
func (r *Runner) Analyze(ctx context.Context) error {
	files, err := r.listPosts()
	if err != nil {
		return err
	}
	logx.Infof("分析 %d 篇帖子的分享状态", len(files))

	freq := map[string]map[string]int{}
	for _, f := range files {
		post, err := parse.File(f)
		if err != nil {
			return err
		}
		target, cat := r.cls.Classify(post)
		label := cat.Label
		if cat.Skip {
			label = fmt.Sprintf("(skip: %s)", cat.SkipReason)
		}
		group := classify.Group(target)
		if freq[group] == nil {
			freq[group] = map[string]int{}
		}
		freq[group][label]++
	}

	for _, group := range []string{"general", "community", "circle", "event", "collection"} {
		counts := freq[group]
		if len(counts) == 0 {
			continue
		}
		logx.Infof("== %s ==", group)
		labels := make([]string, 0, len(counts))
		for l := range counts {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		for _, l := range labels {
			logx.Infof("%6d  %s", counts[l], l)
		}
	}
	return nil
}

// Report 返回本次运行收集的统计与帖子记录。
func (r *Runner) Report() (model.ImportStats, []model.PostRecord) {
	return r.stats, r.records
}

// listPosts 列出帖子源文件；找不到目录或零匹配均为致命条件。
func (r *Runner) listPosts() ([]string, error) {
	files, err := scan.ListPosts(
		filepath.Join(r.takeout, r.cfg.Takeout.Root),
		r.cfg.Takeout.Stream,
		r.cfg.Takeout.Posts,
	)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s post files found under %s", scan.SourceExt,
			filepath.Join(r.takeout, r.cfg.Takeout.Root, r.cfg.Takeout.Stream, r.cfg.Takeout.Posts))
	}
	return files, nil
}

// mediaObserver 在开启清单时把归并动作写入数据库。
func (r *Runner) mediaObserver(ctx context.Context) media.Observer {
	if r.store == nil {
		return nil
	}
	return func(asset model.MediaAsset, action string) {
		if err := r.store.RecordMedia(ctx, asset, action); err != nil {
			logx.Warnf("写入媒体记录失败：%v", err)
		}
	}
}
