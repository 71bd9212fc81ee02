// 命令行入口：
// - 解析 flags 与 settings.yaml
// - 初始化日志、可选的导入清单数据库
// - 支持分析模式（-analyze，只跑分类器不写文件）与导入报告（-report）
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go-gplus-import/internal/config"
	"go-gplus-import/internal/export"
	"go-gplus-import/internal/importer"
	"go-gplus-import/internal/logx"
	"go-gplus-import/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to settings.yaml")
		takeoutDir = flag.String("takeout", "", "extracted takeout dump folder (required)")
		outDir     = flag.String("out", "new_site", "output site folder")
		analyze    = flag.Bool("analyze", false, "print share-status frequency tables and exit, no writes")
		reportPath = flag.String("report", "", "write import report json to this path")
	)
	flag.Parse()

	if *takeoutDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	// 1) 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2) 初始化日志：级别/格式/语言/颜色
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	ctx := context.Background()

	// 3) 导入清单：分析模式与未开启 MANIFEST 时不打开数据库
	var st *store.SQLite
	if cfg.Manifest && cfg.Database.Type == "sqlite" && !*analyze {
		st, err = store.OpenSQLite(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer st.Close()
	}

	run := importer.New(cfg, st, *takeoutDir, *outDir)

	// 4) 分析模式：打印频次表后退出
	if *analyze {
		if err := run.Analyze(ctx); err != nil {
			logx.Errorf("分析失败：%v", err)
			os.Exit(1)
		}
		return
	}

	// 5) 执行导入
	logx.Infof("开始导入：%s → %s", *takeoutDir, *outDir)
	if err := run.Run(ctx); err != nil {
		logx.Errorf("运行失败：%v", err)
		os.Exit(1)
	}

	// 6) 可选：写出导入报告
	if *reportPath != "" {
		stats, records := run.Report()
		if err := export.ToJSONReport(stats, records, *reportPath); err != nil {
			log.Fatalf("export report: %v", err)
		}
		logx.Infof("已写出报告 %s", *reportPath)
	}
}
