// 包 classify 把帖子的可见性块映射为分类结果：
// 规则表按序求值、首个命中生效，顺序即优先级，不可调换。
// 跳过（skip）是高频的正常结果而非错误，由调用方连同原因记录日志。
package classify

import (
	"fmt"
	"strings"

	"go-gplus-import/internal/config"
	"go-gplus-import/internal/model"
)

// 跳过原因。
const (
	SkipCommunityDisabled = "community-disabled"
	SkipCommunityFiltered = "community-filtered"
	SkipEventDisabled     = "event-disabled"
	SkipPrivateDisabled   = "private-disabled"
	SkipCircleFiltered    = "circle-filtered"
)

// Classifier 持有识别短语与导入策略，规则表在构造时闭包生成。
type Classifier struct {
	shared config.Shared
	policy config.Import
	rules  []rule
}

// rule 为一条分类规则：谓词 + 结果，便于逐条单测。
type rule struct {
	name    string
	applies func(t model.VisibilityTarget) bool
	outcome func(t model.VisibilityTarget) model.Category
}

// New 根据配置构造分类器。
func New(cfg *config.Config) *Classifier {
	c := &Classifier{shared: cfg.Shared, policy: cfg.Import}
	sh, pol := c.shared, c.policy
	c.rules = []rule{
		{
			// 公开/圈子/扩展圈子前缀：取首个逗号之前的文本
			name: "public-prefix",
			applies: func(t model.VisibilityTarget) bool {
				return strings.HasPrefix(t.Label, sh.Public) ||
					strings.HasPrefix(t.Label, sh.Circles) ||
					strings.HasPrefix(t.Label, sh.ExtCircles)
			},
			outcome: func(t model.VisibilityTarget) model.Category {
				return model.Labeled(cutComma(t.Label))
			},
		},
		{
			name:    "community",
			applies: func(t model.VisibilityTarget) bool { return strings.HasPrefix(t.Label, sh.Com) },
			outcome: func(t model.VisibilityTarget) model.Category {
				if !pol.Com {
					return model.Skipped(SkipCommunityDisabled)
				}
				if contains(pol.ComFilter, t.Name) {
					return model.Skipped(SkipCommunityFiltered)
				}
				return model.Labeled(quoted(t.Label, t.Name))
			},
		},
		{
			// 合集一律按公开处理，无开关
			name:    "collection",
			applies: func(t model.VisibilityTarget) bool { return strings.HasPrefix(t.Label, sh.Coll) },
			outcome: func(t model.VisibilityTarget) model.Category {
				return model.Labeled(quoted(t.Label, t.Name))
			},
		},
		{
			name:    "event",
			applies: func(t model.VisibilityTarget) bool { return strings.HasPrefix(t.Label, sh.Event) },
			outcome: func(t model.VisibilityTarget) model.Category {
				if !pol.Event {
					return model.Skipped(SkipEventDisabled)
				}
				return model.Labeled(quoted(t.Label, t.Name))
			},
		},
		{
			name: "circle",
			applies: func(t model.VisibilityTarget) bool {
				return t.HasEntity && t.Kind == model.EntityCircle
			},
			outcome: func(t model.VisibilityTarget) model.Category {
				if !pol.Private {
					return model.Skipped(SkipPrivateDisabled)
				}
				if contains(pol.CircleFilter, t.Name) {
					return model.Skipped(SkipCircleFiltered)
				}
				return model.Labeled(quoted("Shared to circle ", t.Name))
			},
		},
		{
			// 兜底：无可识别的结构化目标，视作私密帖
			name:    "other",
			applies: func(model.VisibilityTarget) bool { return true },
			outcome: func(model.VisibilityTarget) model.Category {
				if !pol.Private {
					return model.Skipped(SkipPrivateDisabled)
				}
				return model.Labeled(sh.Other)
			},
		},
	}
	return c
}

// Classify 解析分享目标并按规则表求值。
// 实体名解析可能清空帖子的 Permalink（原帖被推断为已删除）。
func (c *Classifier) Classify(p *model.ExportedPost) (model.VisibilityTarget, model.Category) {
	t := Resolve(p)
	for _, r := range c.rules {
		if r.applies(t) {
			return t, r.outcome(t)
		}
	}
	// 规则表以恒真规则收尾，到不了这里
	return t, model.Labeled(c.shared.Other)
}

// Resolve 从帖子快照派生分享目标。
// 可见性链接无文本时，按链接路径合成 "Deleted <kind>" 占位名，
// 并清空 Permalink：原帖已不存在。
func Resolve(p *model.ExportedPost) model.VisibilityTarget {
	t := model.VisibilityTarget{Label: p.VisibilityLabel}
	if !p.HasVisLink {
		return t
	}
	t.HasEntity = true
	t.Kind = KindFromHref(p.VisibilityHref)
	t.Name = p.VisibilityText
	if t.Name == "" {
		t.Name = fmt.Sprintf("Deleted %s", t.Kind)
		p.Permalink = ""
	}
	return t
}

// KindFromHref 依据链接路径判断实体类型，无法识别时按个人资料处理。
func KindFromHref(href string) model.EntityKind {
	switch {
	case strings.Contains(href, "communities"):
		return model.EntityCommunity
	case strings.Contains(href, "collection"):
		return model.EntityCollection
	case strings.Contains(href, "event"):
		return model.EntityEvent
	case strings.Contains(href, "circles"):
		return model.EntityCircle
	default:
		return model.EntityProfile
	}
}

// Group 返回分析模式下的统计分组。
func Group(t model.VisibilityTarget) string {
	if !t.HasEntity {
		return "general"
	}
	switch t.Kind {
	case model.EntityCommunity, model.EntityCollection, model.EntityEvent, model.EntityCircle:
		return string(t.Kind)
	default:
		return "general"
	}
}

// cutComma 取首个逗号之前的文本。
func cutComma(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return s[:i]
	}
	return s
}

// quoted 拼接 `<短语>"<实体名>"` 形式的分类标签。
func quoted(label, name string) string {
	return fmt.Sprintf("%s\"%s\"", label, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
