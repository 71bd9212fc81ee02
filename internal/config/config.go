// 包 config 负责加载与校验应用配置（settings.yaml），
// 对外提供结构体 Config 及默认值/合法性校验。
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 聚合一次运行所需的全部配置；启动时构造一次并显式传入各组件。
type Config struct {
	Site      Site     `yaml:"SITE"`
	Takeout   Takeout  `yaml:"GTO"`
	Shared    Shared   `yaml:"SHARED"`
	Import    Import   `yaml:"IMPORT"`
	Database  Database `yaml:"DATABASE"`
	Manifest  bool     `yaml:"MANIFEST"`
	LogLevel  string   `yaml:"LOG_LEVEL"`
	LogFormat string   `yaml:"LOG_FORMAT"` // text|json|pretty
	LogLocale string   `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor  string   `yaml:"LOG_COLOR"`  // auto|always|never
}

// Site 为生成站点配置（conf.yaml）所需的字段，核心流程本身不消费。
type Site struct {
	Lang  string `yaml:"lang"`
	Descr string `yaml:"descr"`
	URL   string `yaml:"url"`
	Email string `yaml:"email"`
	Title string `yaml:"title"`
}

// Takeout 描述导出包内的目录结构（随导出语言而变，故可配置）。
type Takeout struct {
	Root   string `yaml:"root"`
	Stream string `yaml:"stream"`
	Posts  string `yaml:"posts"`
}

// Shared 为分享状态的识别短语集合。
// 前三项按前缀匹配，com/coll/event 为实体分享短语，other 为兜底标签。
type Shared struct {
	Public     string `yaml:"public"`
	Circles    string `yaml:"circles"`
	ExtCircles string `yaml:"extcircles"`
	Com        string `yaml:"com"`
	Coll       string `yaml:"coll"`
	Event      string `yaml:"event"`
	Other      string `yaml:"other"`
}

// Import 为导入策略开关与排除名单。
type Import struct {
	Com          bool     `yaml:"com"`
	ComFilter    []string `yaml:"com_filter"`
	Private      bool     `yaml:"private"`
	CircleFilter []string `yaml:"circle_filter"`
	Event        bool     `yaml:"event"`
}

// Database 为导入清单（manifest）存储配置。
type Database struct {
	Type string `yaml:"type"` // sqlite (default)
	DSN  string `yaml:"dsn"`  // ./import.db
}

// Load 从文件读取 YAML 并反序列化为 Config，同时进行基础校验与默认值填充。
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Default 返回与原始导出包（德语界面）匹配的默认配置。
func Default() *Config {
	return &Config{
		Site: Site{
			Lang:  "de",
			URL:   "http://localhost:8000/",
			Title: "Static G+ stream archive",
		},
		Takeout: Takeout{
			Root:   "Takeout",
			Stream: "Stream in Google+",
			Posts:  "Beiträge",
		},
		Shared: Shared{
			Public:     "Geteilt mit: Öffentlich",
			Circles:    "Geteilt mit: Meine Kreise",
			ExtCircles: "Geteilt mit: Meine erweiterten Kreise",
			Com:        "Shared to the community ",
			Coll:       "Shared to the collection ",
			Event:      "Shared to the event ",
			Other:      "Andere",
		},
		Import: Import{
			Com:     true,
			Private: true,
			Event:   true,
		},
		Database: Database{Type: "sqlite", DSN: "./import.db"},
	}
}

// Validate 负责合法性检查与默认值设置，避免在业务层分散判空逻辑。
func (c *Config) Validate() error {
	d := Default()
	if c.Takeout.Root == "" {
		c.Takeout.Root = d.Takeout.Root
	}
	if c.Takeout.Stream == "" {
		c.Takeout.Stream = d.Takeout.Stream
	}
	if c.Takeout.Posts == "" {
		c.Takeout.Posts = d.Takeout.Posts
	}
	if c.Shared.Public == "" {
		c.Shared.Public = d.Shared.Public
	}
	if c.Shared.Circles == "" {
		c.Shared.Circles = d.Shared.Circles
	}
	if c.Shared.ExtCircles == "" {
		c.Shared.ExtCircles = d.Shared.ExtCircles
	}
	if c.Shared.Com == "" {
		c.Shared.Com = d.Shared.Com
	}
	if c.Shared.Coll == "" {
		c.Shared.Coll = d.Shared.Coll
	}
	if c.Shared.Event == "" {
		c.Shared.Event = d.Shared.Event
	}
	if c.Shared.Other == "" {
		c.Shared.Other = d.Shared.Other
	}
	if c.Site.Lang == "" {
		c.Site.Lang = d.Site.Lang
	}
	if c.Site.URL == "" {
		c.Site.URL = d.Site.URL
	}
	if c.Site.Title == "" {
		c.Site.Title = d.Site.Title
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite"
	}
	if c.Database.Type != "sqlite" && c.Database.Type != "none" {
		return fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "./import.db"
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	return nil
}
