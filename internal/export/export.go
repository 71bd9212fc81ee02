// 包 export 负责导入报告：把一次运行的统计与帖子记录写为 report.json。
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"go-gplus-import/internal/model"
)

// ToJSONReport 将统计与记录写入 JSON 文件（带缩进格式）。
func ToJSONReport(stats model.ImportStats, posts []model.PostRecord, path string) error {
	out := model.Report{Stats: stats, Posts: posts}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	return nil
}
