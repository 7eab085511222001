package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mdenv "github.com/riverfjs/mdenv-go"
)

// envRecord 环境的输出格式
type envRecord struct {
	Line        int                `json:"line" yaml:"line"`
	Col         int                `json:"col,omitempty" yaml:"col,omitempty"`
	Kind        string             `json:"kind" yaml:"kind"`
	FenceLevel  int                `json:"fence_level,omitempty" yaml:"fence_level,omitempty"`
	Text        string             `json:"text,omitempty" yaml:"text,omitempty"`
	Transitions []transitionRecord `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

type transitionRecord struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	Env       string `json:"env" yaml:"env"`
}

type blockRecord struct {
	Language   string      `json:"language,omitempty" yaml:"language,omitempty"`
	StartLine  int         `json:"start_line" yaml:"start_line"`
	EndLine    int         `json:"end_line" yaml:"end_line"`
	Code       string      `json:"code,omitempty" yaml:"code,omitempty"`
	Mismatches []envRecord `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

func newEnvRecord(line int, env mdenv.Environment) envRecord {
	return envRecord{
		Line:       line,
		Kind:       env.Kind.String(),
		FenceLevel: env.FenceLevel,
	}
}

var kindStyles = map[mdenv.Kind]lipgloss.Style{
	mdenv.KindMarkdown:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	mdenv.KindInlineCode:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	mdenv.KindMultilineCode: lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
	mdenv.KindInlineMath:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	mdenv.KindMultilineMath: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
}

// printer 按配置的格式输出
type printer struct {
	w     io.Writer
	cfg   *Config
	width int
}

func newPrinter(w io.Writer, cfg *Config) *printer {
	return &printer{w: w, cfg: cfg, width: len("multiline_math")}
}

// tag 返回环境标签，启用颜色时按类别着色
func (p *printer) tag(env mdenv.Environment) string {
	s := fmt.Sprintf("%-*s", p.width+3, env.String())
	if !p.cfg.Color {
		return s
	}
	return kindStyles[env.Kind].Render(s)
}

// structured 以 json 或 yaml 输出 v，format 为 text 时返回 false
func (p *printer) structured(v interface{}) (bool, error) {
	switch p.cfg.Format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}
