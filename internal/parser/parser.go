package parser

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Block 一个围栏代码块的内容范围
type Block struct {
	Language  string // 围栏信息中的语言
	StartLine int    // 第一行内容的行号（从 0 开始）
	EndLine   int    // 最后一行内容之后的行号
	Code      string // 原始代码内容
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}

// FencedBlocks 返回文档中所有非空围栏代码块的内容行范围
//
// 没有内容行的代码块不返回。
func FencedBlocks(source []byte) []Block {
	doc := ParseAST(source)
	starts := lineStarts(source)

	blocks := make([]Block, 0)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := fenced.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		var code bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(source))
		}
		first, last := lines.At(0), lines.At(lines.Len()-1)
		blocks = append(blocks, Block{
			Language:  string(fenced.Language(source)),
			StartLine: lineOf(starts, first.Start),
			EndLine:   lineOf(starts, last.Start) + 1,
			Code:      code.String(),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// lineStarts returns the byte offset at which each line begins.
func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf maps a byte offset to its 0-based line number.
func lineOf(starts []int, offset int) int {
	return sort.SearchInts(starts, offset+1) - 1
}
