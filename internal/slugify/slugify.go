// 包 slugify 负责从日期与标题推导稳定的文件名标识：
// 变音符折叠、小写化、非字母数字压缩为单个连字符。
package slugify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 折叠链：NFD 分解 → 去掉组合符号（变音符） → NFC 重组。
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ForPost 由 postDateText 的首个空白分隔字段与标题拼出 slug。
// 相同的 (日期文本, 标题) 恒产出相同结果；空结果由调用方按致命条件处理。
func ForPost(postDateText, title string) string {
	date := ""
	if fields := strings.Fields(postDateText); len(fields) > 0 {
		date = fields[0]
	}
	return Slugify(date + "_" + title)
}

// Slugify 将任意文本转为文件系统安全的标识。
func Slugify(s string) string {
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
