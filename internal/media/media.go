// 包 media 负责媒体库归并：把导出树里散落的媒体文件
// 以规范名收拢到统一目录。去重只看文件名，不比对内容（源系统如此设计）。
package media

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go-gplus-import/internal/logx"
	"go-gplus-import/internal/model"
	"go-gplus-import/internal/scan"
)

// 识别的媒体扩展名（小写比较）。
var extensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".m4v":  {},
	".mp4":  {},
	".gif":  {}, // 'Year in photos'
}

// 归并动作。
const (
	ActionCopied  = "copied"
	ActionRenamed = "renamed"
	ActionSkipped = "skipped"
)

// Stats 为一次归并的计数。
type Stats struct {
	Copied  int
	Renamed int
	Skipped int
}

// Observer 在每个媒体资产处理完成后回调（可为 nil）。
type Observer func(asset model.MediaAsset, action string)

// IsMedia 判断文件名是否属于识别的媒体扩展名集合。
func IsMedia(name string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// CanonicalName 把文件名中的每个 "=" 替换为 "--"，作为媒体库内的稳定名。
func CanonicalName(name string) string {
	return strings.ReplaceAll(name, "=", "--")
}

// Reconcile 遍历导出树并填充媒体库目录：
// - 目录已存在不是错误
// - 原名含 "=" 的文件移动改名，其余复制并保留修改时间
// - 库中已有同名文件时跳过，先写者胜，不覆盖不比内容
// 对同一导出树重复执行不会改变库内文件集合（幂等）。
func Reconcile(exportRoot, libraryDir string, obs Observer) (Stats, error) {
	var st Stats
	if err := os.MkdirAll(libraryDir, 0o755); err != nil {
		return st, fmt.Errorf("create media dir %s: %w", libraryDir, err)
	}
	err := scan.WalkFiles(exportRoot, func(path string, d fs.DirEntry) error {
		name := d.Name()
		if !IsMedia(name) {
			return nil
		}
		canonical := CanonicalName(name)
		dest := filepath.Join(libraryDir, canonical)
		asset := model.MediaAsset{SourcePath: path, CanonicalName: canonical}
		if _, err := os.Stat(dest); err == nil {
			asset.Exists = true
			st.Skipped++
			logx.Infof("跳过 %s：同名文件已在媒体库中", name)
			notify(obs, asset, ActionSkipped)
			return nil
		}
		if strings.Contains(name, "=") {
			if err := os.Rename(path, dest); err != nil {
				return fmt.Errorf("move media %s: %w", path, err)
			}
			st.Renamed++
			logx.Debugf("%s 已移动改名进媒体库", name)
			notify(obs, asset, ActionRenamed)
			return nil
		}
		if err := copyPreserving(path, dest, d); err != nil {
			return fmt.Errorf("copy media %s: %w", path, err)
		}
		st.Copied++
		logx.Debugf("%s 已复制进媒体库", name)
		notify(obs, asset, ActionCopied)
		return nil
	})
	if err != nil {
		return st, fmt.Errorf("reconcile media: %w", err)
	}
	return st, nil
}

// copyPreserving 复制文件并保留权限与修改时间。
func copyPreserving(src, dst string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func notify(obs Observer, asset model.MediaAsset, action string) {
	if obs != nil {
		obs(asset, action)
	}
}
