package scanner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riverfjs/mdenv-go/internal/types"
)

// Delimiter 描述一个开始标记
type Delimiter struct {
	Name     string
	Marker   string            // 标记字面量
	MinLen   int               // Marker 最少重复次数
	Opens    types.Environment // 匹配后进入的环境（多行代码的级别由匹配长度决定）
	Anchored bool              // 仅在片段开头（忽略前导空白）匹配
}

// minFenceLen 多行代码围栏的最短长度
const minFenceLen = 3

// closingFenceSlack 闭合围栏的最短长度为 FenceLevel + closingFenceSlack
const closingFenceSlack = 2

// Delimiters 按优先级排列的开始标记表
//
// 同一位置有多个候选时，靠前的优先：``` 先于 `，$$ 先于 $。
var Delimiters = []Delimiter{
	{Name: "multiline_code", Marker: "`", MinLen: minFenceLen, Opens: types.MultilineCode(0), Anchored: true},
	{Name: "inline_code", Marker: "`", MinLen: 1, Opens: types.InlineCode},
	{Name: "multiline_math", Marker: "$$", MinLen: 1, Opens: types.MultilineMath},
	{Name: "inline_math", Marker: "$", MinLen: 1, Opens: types.InlineMath},
}

// openerRe 由 Delimiters 生成，每个标记占一个捕获组
var openerRe = buildOpenerRegexp(Delimiters)

// buildOpenerRegexp joins the table into one alternation. Go's regexp returns
// the leftmost match and, at equal offsets, the first alternative.
func buildOpenerRegexp(delims []Delimiter) *regexp.Regexp {
	alts := make([]string, 0, len(delims))
	for _, d := range delims {
		pattern := regexp.QuoteMeta(d.Marker)
		if d.MinLen > 1 {
			pattern = "(?:" + pattern + "){" + strconv.Itoa(d.MinLen) + ",}"
		}
		pattern = "(" + pattern + ")"
		if d.Anchored {
			pattern = `^[ \t]*` + pattern
		}
		alts = append(alts, pattern)
	}
	return regexp.MustCompile(strings.Join(alts, "|"))
}

// findOpener 查找片段中最早的开始标记
//
// 返回命中的标记、进入的环境以及标记结束处的偏移；未找到时 end 为 -1。
func findOpener(seg string) (d Delimiter, env types.Environment, end int) {
	loc := openerRe.FindStringSubmatchIndex(seg)
	if loc == nil {
		return Delimiter{}, types.Markdown, -1
	}
	for i, delim := range Delimiters {
		start, stop := loc[2+2*i], loc[3+2*i]
		if start < 0 {
			continue
		}
		opened := delim.Opens
		if opened.IsMultilineCode() {
			opened = types.MultilineCode(stop - start - minFenceLen)
		}
		return delim, opened, stop
	}
	return Delimiter{}, types.Markdown, -1
}

// findCloser 查找当前环境的结束标记，返回结束标记之后的偏移，未找到返回 -1
func findCloser(seg string, env types.Environment) int {
	switch env.Kind {
	case types.KindMultilineCode:
		return closingFence(seg, env.FenceLevel+closingFenceSlack)
	case types.KindInlineCode:
		return indexAfter(seg, "`")
	case types.KindMultilineMath:
		return indexAfter(seg, "$$")
	case types.KindInlineMath:
		return indexAfter(seg, "$")
	}
	return -1
}

func indexAfter(s, marker string) int {
	i := strings.Index(s, marker)
	if i < 0 {
		return -1
	}
	return i + len(marker)
}

// closingFence matches a backtick run of at least minLen at the start of seg,
// ignoring leading blanks. The whole run is consumed.
func closingFence(seg string, minLen int) int {
	start := len(seg) - len(strings.TrimLeft(seg, " \t"))
	end := start
	for end < len(seg) && seg[end] == '`' {
		end++
	}
	if end == start || end-start < minLen {
		return -1
	}
	return end
}
