package mdenv

import (
	"github.com/riverfjs/mdenv-go/internal/scanner"
	"github.com/riverfjs/mdenv-go/internal/types"
)

// 导出类型别名
type (
	Environment       = types.Environment
	Kind              = types.Kind
	SubKind           = types.SubKind
	InvalidInputError = scanner.InvalidInputError
	Transition        = scanner.Transition
)

const (
	KindMarkdown      = types.KindMarkdown
	KindInlineCode    = types.KindInlineCode
	KindMultilineCode = types.KindMultilineCode
	KindInlineMath    = types.KindInlineMath
	KindMultilineMath = types.KindMultilineMath

	SubKindNone       = types.SubKindNone
	SubKindCode       = types.SubKindCode
	SubKindAdmonition = types.SubKindAdmonition
)

var (
	Markdown      = types.Markdown
	InlineCode    = types.InlineCode
	InlineMath    = types.InlineMath
	MultilineMath = types.MultilineMath

	// ErrInvalidInput 行文本包含换行符
	ErrInvalidInput = scanner.ErrInvalidInput
)

// MultilineCode 返回指定围栏级别的多行代码环境
func MultilineCode(level int) Environment {
	return types.MultilineCode(level)
}

// ScanLine 返回单行结束处的环境，见 scanner.Scan
func ScanLine(line string, start Environment) (Environment, error) {
	return scanner.Scan(line, start)
}

// TraceLine 返回单行结束处的环境以及行内每次切换
func TraceLine(line string, start Environment) (Environment, []Transition, error) {
	return scanner.Trace(line, start)
}
