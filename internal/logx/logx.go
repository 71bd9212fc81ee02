// 包 logx 是对标准库 slog 的薄封装：
// - 支持级别/格式/语言/颜色配置
// - 提供 pretty 中文输出（[调试]/[信息]/[警告]/[错误]）
// - 通过 Debugf/Infof/Warnf/Errorf 暴露，便于将来替换底层实现
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// 静默级别：高于所有内置级别即可关闭输出。
const levelOff slog.Level = 100

// Init 根据 level/format/locale/colorMode 初始化全局日志器。
func Init(level, format, locale, colorMode string) {
	lv := ParseLevel(level)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lv})))
	case "text":
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lv})))
	default: // pretty
		slog.SetDefault(slog.New(NewPrettyHandler(os.Stdout, lv, locale, colorMode)))
	}
}

// ParseLevel 将字符串级别解析为 slog.Level。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "silent", "off":
		return levelOff
	default:
		return slog.LevelInfo
	}
}

// 便捷函数：格式化并按级别输出
func Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...)) }
func Infof(format string, v ...any)  { slog.Info(fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...)) }

// labelSpec 描述一个级别的中英文标签与 ANSI 颜色码。
type labelSpec struct {
	zh, en, color string
}

var labels = map[slog.Level]labelSpec{
	slog.LevelDebug: {"[调试]", "[DEBUG]", "90"},
	slog.LevelInfo:  {"[信息]", "[INFO]", "36"},
	slog.LevelWarn:  {"[警告]", "[WARN]", "33"},
	slog.LevelError: {"[错误]", "[ERROR]", "31"},
}

// PrettyHandler 为人读输出：时间 + 本地化级别标签 + 消息 + 扁平化属性。
type PrettyHandler struct {
	w     io.Writer
	level slog.Level
	zh    bool
	color bool
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewPrettyHandler 创建本地化美化 Handler。
func NewPrettyHandler(w io.Writer, lv slog.Level, locale, colorMode string) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	return &PrettyHandler{
		w:     w,
		level: lv,
		zh:    locale == "" || strings.HasPrefix(strings.ToLower(locale), "zh"),
		color: shouldColor(w, colorMode),
		mu:    &sync.Mutex{},
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level && h.level < levelOff
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ts.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(h.label(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	attrs := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &cp
}

// WithGroup 本项目不使用属性分组，原样返回。
func (h *PrettyHandler) WithGroup(string) slog.Handler { return h }

// label 返回带可选颜色的本地化级别标签。
func (h *PrettyHandler) label(l slog.Level) string {
	spec, ok := labels[l]
	if !ok {
		return fmt.Sprintf("[L%d]", l)
	}
	s := spec.en
	if h.zh {
		s = spec.zh
	}
	if h.color {
		s = "\x1b[" + spec.color + "m" + s + "\x1b[0m"
	}
	return s
}

// shouldColor 判断是否启用颜色：遵循 LOG_COLOR 与 NO_COLOR。
func shouldColor(w io.Writer, mode string) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "auto", "":
		// 简单的 TTY 检测：仅在字符设备上启用彩色输出
		if f, ok := w.(*os.File); ok {
			if fi, err := f.Stat(); err == nil {
				return (fi.Mode() & os.ModeCharDevice) != 0
			}
		}
		return false
	default:
		return false
	}
}
