// 包 scan 负责遍历导出包：
// - ListPosts：列出帖子目录下的 .html 源文件
// - WalkFiles：递归遍历导出树的全部普通文件（供媒体归并使用）
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SourceExt 为帖子源文件扩展名。
const SourceExt = ".html"

// ListPosts 返回 root/stream/posts 目录下以 .html 结尾的普通文件完整路径。
// 零匹配不是错误，由调用方决定是否致命；顺序即目录列举顺序，不保证字典序。
func ListPosts(root, stream, posts string) ([]string, error) {
	dir := filepath.Join(root, stream, posts)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), SourceExt) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

// WalkFiles 递归遍历 root 下的全部普通文件并逐个回调。
func WalkFiles(root string, fn func(path string, d fs.DirEntry) error) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return fn(path, d)
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return nil
}
