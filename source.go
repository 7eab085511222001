package mdenv

import (
	"fmt"
	"io"
	"strings"
)

// LineSource 提供缓冲区当前内容的按行访问
//
// Line 返回的文本不得包含换行符。
type LineSource interface {
	LineCount() int
	Line(i int) string
}

// Lines 是基于字符串切片的 LineSource，越界索引返回空行
type Lines []string

// LineCount returns the number of lines.
func (l Lines) LineCount() int {
	return len(l)
}

// Line returns line i, or "" when i is out of range.
func (l Lines) Line(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

// NewTextSource 按 \n 拆分文本，并去掉每行末尾的 \r
func NewTextSource(text string) Lines {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Lines(lines)
}

// ReadSource 读取全部输入并按行拆分
func ReadSource(r io.Reader) (Lines, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return NewTextSource(string(data)), nil
}
