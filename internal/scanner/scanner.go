// Package scanner 计算单行文本结束处的词法环境
package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riverfjs/mdenv-go/internal/types"
)

// ErrInvalidInput 扫描器输入不是单行文本
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError 传入扫描器的行包含换行符
type InvalidInputError struct {
	Line string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("single line environment cannot contain newline, got: %q", e.Line)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Transition 记录行内一次环境切换
type Transition struct {
	Offset    int               // 标记结束处的字节偏移
	Delimiter string            // 标记名称，闭合时为 "close"
	Env       types.Environment // 切换后的环境
}

// Scan 返回 line 结束处的环境
//
// 参数：
//   - line: 单行文本，不得包含换行符
//   - start: 行首的环境
//
// 返回：
//   - types.Environment: 行尾的环境
//   - error: line 含换行符时返回 *InvalidInputError
func Scan(line string, start types.Environment) (types.Environment, error) {
	return walk(line, start, nil)
}

// Trace 与 Scan 相同，同时返回行内的每次环境切换
func Trace(line string, start types.Environment) (types.Environment, []Transition, error) {
	var steps []Transition
	env, err := walk(line, start, func(tr Transition) {
		steps = append(steps, tr)
	})
	return env, steps, err
}

// walk consumes the line delimiter by delimiter. Every transition consumes
// at least one byte, so the loop ends after at most len(line) steps.
func walk(line string, env types.Environment, onStep func(Transition)) (types.Environment, error) {
	if strings.Contains(line, "\n") {
		return env, &InvalidInputError{Line: line}
	}

	offset := 0
	for offset < len(line) {
		seg := line[offset:]

		var (
			next types.Environment
			name string
			end  int
		)
		if env.IsMarkdown() {
			var d Delimiter
			d, next, end = findOpener(seg)
			name = d.Name
		} else {
			next, name, end = types.Markdown, "close", findCloser(seg, env)
		}
		if end < 0 {
			break
		}

		env = next
		offset += end
		if onStep != nil {
			onStep(Transition{Offset: offset, Delimiter: name, Env: env})
		}
	}
	return env, nil
}
