// Package cli 实现 mdenv 命令行工具
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdenv "github.com/riverfjs/mdenv-go"
)

// NewRootCmd 创建 mdenv 根命令
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mdenv",
		Short: "Classify cursor positions in Markdown with code and math",
		Long: `mdenv reports the lexical environment (markdown, inline code, multiline
code, inline math, multiline math) at a position in a Markdown file.

Examples:
  mdenv env notes.md --line 12 --col 4
  mdenv annotate notes.md --trace
  mdenv blocks notes.md --strict
  cat notes.md | mdenv annotate - --format json`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default ./mdenv.yaml or $XDG_CONFIG_HOME/mdenv/mdenv.yaml)")
	flags.StringP("format", "f", "text", "Output format: text, json or yaml")
	flags.Bool("color", true, "Colorize text output")
	flags.Bool("debug", false, "Log cache invalidation to stderr")

	root.AddCommand(newEnvCmd(), newAnnotateCmd(), newBlocksCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads FILE, or stdin when FILE is "-", split into lines.
func readInput(cmd *cobra.Command, path string) (mdenv.Lines, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	src, err := mdenv.ReadSource(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// newResolver builds a resolver that logs to the command's stderr in debug mode.
func newResolver(cmd *cobra.Command, cfg *Config) *mdenv.Resolver {
	return mdenv.NewResolver(
		mdenv.WithDebug(cfg.Debug),
		mdenv.WithLogger(log.New(cmd.ErrOrStderr(), "[mdenv] ", log.LstdFlags)),
	)
}

func newEnvCmd() *cobra.Command {
	var line, col int
	cmd := &cobra.Command{
		Use:   "env FILE",
		Short: "Print the environment at a cursor position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if line < 0 || line >= src.LineCount() {
				return fmt.Errorf("line %d out of range (document has %d lines)", line, src.LineCount())
			}
			if col < 0 {
				return fmt.Errorf("column %d must not be negative", col)
			}

			env, err := newResolver(cmd, cfg).Resolve(src, line, col)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), cfg)
			rec := newEnvRecord(line, env)
			rec.Col = col
			if ok, err := p.structured(rec); ok {
				return err
			}
			_, err = fmt.Fprintln(p.w, env.String())
			return err
		},
	}
	cmd.Flags().IntVarP(&line, "line", "l", 0, "Cursor line (0-based)")
	cmd.Flags().IntVarP(&col, "col", "c", 0, "Cursor column in characters")
	return cmd
}

func newAnnotateCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "annotate FILE",
		Short: "Print every line with the environment at its end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			envs, err := newResolver(cmd, cfg).Annotate(src)
			if err != nil {
				return err
			}

			records := make([]envRecord, len(envs))
			carry := mdenv.Markdown
			for i, env := range envs {
				records[i] = newEnvRecord(i, env)
				records[i].Text = src.Line(i)
				if trace {
					_, steps, err := mdenv.TraceLine(src.Line(i), carry)
					if err != nil {
						return err
					}
					for _, st := range steps {
						records[i].Transitions = append(records[i].Transitions, transitionRecord{
							Offset:    st.Offset,
							Delimiter: st.Delimiter,
							Env:       st.Env.String(),
						})
					}
				}
				carry = env.ToNextLine()
			}

			p := newPrinter(cmd.OutOrStdout(), cfg)
			if ok, err := p.structured(records); ok {
				return err
			}
			for i, rec := range records {
				if _, err := fmt.Fprintf(p.w, "%4d  %s%s\n", rec.Line, p.tag(envs[i]), rec.Text); err != nil {
					return err
				}
				for _, tr := range rec.Transitions {
					if _, err := fmt.Fprintf(p.w, "        @%d %s -> %s\n", tr.Offset, tr.Delimiter, tr.Env); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Show every delimiter transition")
	return cmd
}

func newBlocksCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "List fenced code blocks and lines the scanner disagrees on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			checks, err := mdenv.CheckFences(strings.Join(src, "\n"))
			if err != nil {
				return err
			}

			records := make([]blockRecord, len(checks))
			for i, c := range checks {
				records[i] = blockRecord{
					Language:  c.Block.Language,
					StartLine: c.Block.StartLine,
					EndLine:   c.Block.EndLine,
					Code:      c.Block.Code,
				}
				for _, m := range c.Mismatches {
					rec := newEnvRecord(m.Line, m.Env)
					rec.Text = m.Text
					records[i].Mismatches = append(records[i].Mismatches, rec)
				}
			}

			p := newPrinter(cmd.OutOrStdout(), cfg)
			ok, err := p.structured(records)
			if err != nil {
				return err
			}
			if !ok {
				for i, rec := range records {
					lang := rec.Language
					if lang == "" {
						lang = "-"
					}
					if _, err := fmt.Fprintf(p.w, "lines %d-%d  %s  %d mismatches\n",
						rec.StartLine, rec.EndLine-1, lang, len(checks[i].Mismatches)); err != nil {
						return err
					}
					for _, m := range checks[i].Mismatches {
						if _, err := fmt.Fprintf(p.w, "  %4d  %s%s\n", m.Line, p.tag(m.Env), m.Text); err != nil {
							return err
						}
					}
				}
			}

			if n := mdenv.CountMismatches(checks); strict && n > 0 {
				return fmt.Errorf("%d code lines end outside a multiline code environment", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any mismatch is found")
	return cmd
}
