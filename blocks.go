package mdenv

import (
	"github.com/riverfjs/mdenv-go/internal/parser"
)

// FencedBlock 一个围栏代码块的内容范围，由 goldmark 解析得到
type FencedBlock = parser.Block

// Mismatch 扫描器与 goldmark 对某一代码行的判断不一致
type Mismatch struct {
	Line int
	Text string
	Env  Environment
}

// FenceCheck 一个围栏代码块及其中判断不一致的行
type FenceCheck struct {
	Block      FencedBlock
	Mismatches []Mismatch
}

// FencedBlocks 返回文本中所有非空围栏代码块
func FencedBlocks(text string) []FencedBlock {
	return parser.FencedBlocks([]byte(text))
}

// CheckFences 对比 goldmark 的围栏代码块与逐行扫描的结果
//
// goldmark 认为是代码内容、但扫描器在行尾不处于多行代码环境的行会被报告。
// 常见原因是代码块内出现了较短的反引号串（闭合围栏只要求 FenceLevel+2 个），
// 或围栏位于引用、列表等容器内。
func CheckFences(text string) ([]FenceCheck, error) {
	src := NewTextSource(text)
	envs, err := NewResolver().Annotate(src)
	if err != nil {
		return nil, err
	}

	blocks := FencedBlocks(text)
	checks := make([]FenceCheck, len(blocks))
	for bi, block := range blocks {
		checks[bi].Block = block
		for i := block.StartLine; i < block.EndLine && i < len(envs); i++ {
			if envs[i].IsMultilineCode() {
				continue
			}
			checks[bi].Mismatches = append(checks[bi].Mismatches, Mismatch{
				Line: i,
				Text: src.Line(i),
				Env:  envs[i],
			})
		}
	}
	return checks, nil
}

// CountMismatches 返回所有代码块中不一致行的总数
func CountMismatches(checks []FenceCheck) int {
	n := 0
	for _, c := range checks {
		n += len(c.Mismatches)
	}
	return n
}
