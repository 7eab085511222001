package mdenv

import (
	"testing"
)

// mismatchesOf 展开所有代码块中的不一致行
func mismatchesOf(checks []FenceCheck) []Mismatch {
	var all []Mismatch
	for _, c := range checks {
		all = append(all, c.Mismatches...)
	}
	return all
}

// TestCheckFences_Agrees 简单文档中扫描器与 goldmark 的代码块一致
func TestCheckFences_Agrees(t *testing.T) {
	docs := []string{
		"# T\n\n```go\nfunc f() {\n\treturn `x` + \"$\"\n}\n```\n\ntext $a$\n",
		"````md\n``\nnested\n````\n",
		"- item\n\n```\n$$\nnot math\n```\n",
	}
	for _, doc := range docs {
		checks, err := CheckFences(doc)
		if err != nil {
			t.Fatalf("CheckFences() error = %v", err)
		}
		if len(checks) == 0 {
			t.Errorf("CheckFences(%q) returned no blocks", doc)
		}
		if n := CountMismatches(checks); n != 0 {
			t.Errorf("CheckFences(%q) = %+v, want no mismatches", doc, mismatchesOf(checks))
		}
	}
}

// TestCheckFences_ShortBacktickRun 代码块中两个反引号的行会被扫描器当作闭合围栏
func TestCheckFences_ShortBacktickRun(t *testing.T) {
	checks, err := CheckFences("```\n``\ncode\n```\n")
	if err != nil {
		t.Fatalf("CheckFences() error = %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("CheckFences() returned %d blocks, want 1", len(checks))
	}
	got := checks[0].Mismatches
	if len(got) != 2 || CountMismatches(checks) != 2 {
		t.Fatalf("CheckFences() mismatches = %+v, want 2", got)
	}
	if got[0].Line != 1 || got[0].Env != Markdown {
		t.Errorf("first mismatch = %+v, want line 1 markdown", got[0])
	}
	if checks[0].Block.StartLine != 1 || checks[0].Block.EndLine != 3 {
		t.Errorf("block = %+v, want lines [1, 3)", checks[0].Block)
	}
}

// TestCheckFences_NestedFence 四个反引号的代码块被内部的三个反引号提前闭合
func TestCheckFences_NestedFence(t *testing.T) {
	checks, err := CheckFences("````md\n```\nnested\n```\n````\n")
	if err != nil {
		t.Fatalf("CheckFences() error = %v", err)
	}
	got := mismatchesOf(checks)
	if len(got) == 0 || got[0].Line != 1 {
		t.Errorf("CheckFences() = %+v, want first mismatch at line 1", got)
	}
}

// TestCheckFences_GroupsByBlock 不一致行归属于各自的代码块
func TestCheckFences_GroupsByBlock(t *testing.T) {
	doc := "```\nok\n```\n\n```\n``\nx\n```\n"
	checks, err := CheckFences(doc)
	if err != nil {
		t.Fatalf("CheckFences() error = %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("CheckFences() returned %d blocks, want 2", len(checks))
	}
	if len(checks[0].Mismatches) != 0 {
		t.Errorf("first block mismatches = %+v, want none", checks[0].Mismatches)
	}
	if len(checks[1].Mismatches) == 0 || checks[1].Mismatches[0].Line != 5 {
		t.Errorf("second block mismatches = %+v, want line 5 first", checks[1].Mismatches)
	}
}

func TestFencedBlocks_Root(t *testing.T) {
	blocks := FencedBlocks("```sh\nls\n```\n")
	if len(blocks) != 1 || blocks[0].Language != "sh" || blocks[0].StartLine != 1 {
		t.Errorf("FencedBlocks() = %+v", blocks)
	}
	if blocks[0].Code != "ls\n" {
		t.Errorf("FencedBlocks() code = %q, want %q", blocks[0].Code, "ls\n")
	}
}
