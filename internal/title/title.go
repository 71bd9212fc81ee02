// 包 title 把帖子正文生成的原始标题压缩为可读的单行纯文本。
// 标题里可能嵌着字面 HTML（链接/加粗/提及），按固定顺序截断与替换。
package title

import "strings"

// 截断标记：命中任意一个则丢弃其后内容。
// 锚点与 span 的截断必须先于通用的 "<" 清除，否则标记已被剥掉、截断不再触发。
var cutMarks = []string{
	"<br>",
	"<a ",
	"span class=",
	".",
	",",
	"?",
	"(",
}

// 字面替换表，按序执行。
var replacements = [][2]string{
	{"<b>", ""},
	{"</b>", ""},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"<b", ""},
	{"</", ""},
	{"<i>", ""},
	{"</i>", ""},
	{"<", ""},
}

// Prettify 将原始标题片段整理为单行标题。
// 对已经干净的纯文本是幂等的（无标记则原样返回）。
func Prettify(t string) string {
	// 先按换行标记截断，再去掉结尾省略号（截尾，不是截断）
	t = cutAt(t, cutMarks[0])
	t = strings.TrimSuffix(t, "...")
	for _, m := range cutMarks[1:] {
		t = cutAt(t, m)
	}
	for _, r := range replacements {
		t = strings.ReplaceAll(t, r[0], r[1])
	}
	return strings.TrimSpace(t)
}

// cutAt 截取 s 中首个 mark 之前的部分；mark 不存在时原样返回。
func cutAt(s, mark string) string {
	if i := strings.Index(s, mark); i >= 0 {
		return s[:i]
	}
	return s
}
