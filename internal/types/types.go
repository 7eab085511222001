package types

import "fmt"

// Kind 表示词法环境的类别
type Kind int

const (
	KindMarkdown Kind = iota
	KindInlineCode
	KindMultilineCode
	KindInlineMath
	KindMultilineMath
)

// String 返回 Kind 的字符串表示
func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindInlineCode:
		return "inline_code"
	case KindMultilineCode:
		return "multiline_code"
	case KindInlineMath:
		return "inline_math"
	case KindMultilineMath:
		return "multiline_math"
	default:
		return "unknown"
	}
}

// SubKind 代码块的附加分类（预留，扫描器始终使用 SubKindNone）
type SubKind int

const (
	SubKindNone SubKind = iota
	SubKindCode
	SubKindAdmonition
)

// Environment 描述文本中某一位置的词法环境
//
// Environment 是不可变值，可直接用 == 比较。
// FenceLevel 仅对 KindMultilineCode 有意义：长度为 L 的围栏对应 L-3。
type Environment struct {
	Kind       Kind
	FenceLevel int
	SubKind    SubKind
}

// 无参数环境的共享实例
var (
	Markdown      = Environment{Kind: KindMarkdown}
	InlineCode    = Environment{Kind: KindInlineCode}
	InlineMath    = Environment{Kind: KindInlineMath}
	MultilineMath = Environment{Kind: KindMultilineMath}
)

// MultilineCode 返回指定围栏级别的多行代码环境
func MultilineCode(level int) Environment {
	return Environment{Kind: KindMultilineCode, FenceLevel: level}
}

func (e Environment) IsMarkdown() bool { return e.Kind == KindMarkdown }

func (e Environment) IsCode() bool {
	return e.Kind == KindInlineCode || e.Kind == KindMultilineCode
}

func (e Environment) IsInlineCode() bool    { return e.Kind == KindInlineCode }
func (e Environment) IsMultilineCode() bool { return e.Kind == KindMultilineCode }

func (e Environment) IsMath() bool {
	return e.Kind == KindInlineMath || e.Kind == KindMultilineMath
}

func (e Environment) IsInlineMath() bool    { return e.Kind == KindInlineMath }
func (e Environment) IsMultilineMath() bool { return e.Kind == KindMultilineMath }

// ToNextLine 返回延续到下一行的环境
//
// 多行代码和多行公式跨行保持；其余环境（包括未闭合的行内代码/公式）
// 在换行处重置为 Markdown。
func (e Environment) ToNextLine() Environment {
	if e.IsMultilineCode() || e.IsMultilineMath() {
		return e
	}
	return Markdown
}

// Equal 结构相等比较
func (e Environment) Equal(other Environment) bool {
	return e.Kind == other.Kind &&
		e.FenceLevel == other.FenceLevel &&
		e.SubKind == other.SubKind
}

// String 返回环境的字符串表示，例如 "multiline_code(1)"
func (e Environment) String() string {
	if e.Kind == KindMultilineCode {
		return fmt.Sprintf("%s(%d)", e.Kind, e.FenceLevel)
	}
	return e.Kind.String()
}
