package mdenv

import (
	"fmt"
	"log"

	"github.com/riverfjs/mdenv-go/internal/cache"
	"github.com/riverfjs/mdenv-go/internal/scanner"
	"github.com/riverfjs/mdenv-go/internal/types"
)

// LineCache 按行号缓存行尾环境，每个文档一个
type LineCache = cache.LineCache

// NewLineCache creates an empty LineCache.
func NewLineCache() *LineCache {
	return cache.New()
}

// Resolver 计算光标所在位置的环境
//
// Resolver 持有一个 LineCache，未变化的行不会重复扫描。
// Resolver 不是并发安全的；多文档场景使用 Session。
type Resolver struct {
	cache  *LineCache
	logger *log.Logger
	debug  bool
}

// NewResolver 创建 Resolver，未指定缓存时使用新的空缓存
func NewResolver(opts ...Option) *Resolver {
	options := applyOptions(opts...)
	return &Resolver{
		cache:  options.Cache,
		logger: options.Logger,
		debug:  options.Debug,
	}
}

// Cache returns the line cache owned by the resolver.
func (r *Resolver) Cache() *LineCache {
	return r.cache
}

// Resolve 返回光标 (line, col) 处的环境
//
// 参数：
//   - src: 缓冲区内容
//   - line: 光标所在行（从 0 开始）
//   - col: 光标所在列，以字符计
//
// 返回：
//   - Environment: 光标处的环境
//   - error: 某行包含换行符时返回包装后的 *InvalidInputError
func (r *Resolver) Resolve(src LineSource, line, col int) (Environment, error) {
	prev, err := r.scanLines(src, line, nil)
	if err != nil {
		return types.Markdown, err
	}

	// 光标所在行每次按键都会变化，不缓存
	partial := truncateRunes(src.Line(line), col)
	env, err := scanner.Scan(partial, prev)
	if err != nil {
		return types.Markdown, fmt.Errorf("line %d: %w", line, err)
	}
	return env, nil
}

// Annotate 返回每一行结束处的环境
func (r *Resolver) Annotate(src LineSource) ([]Environment, error) {
	n := src.LineCount()
	envs := make([]Environment, n)
	if _, err := r.scanLines(src, n, func(i int, env Environment) {
		envs[i] = env
	}); err != nil {
		return nil, err
	}
	r.cache.Truncate(n)
	return envs, nil
}

// scanLines walks lines [0, n) through the cache and returns the
// environment carried into line n. Once a line misses, every later line
// in the pass is rescanned, and cache entries past the first miss are
// dropped since they were derived from a stale carry-over.
//
// Lines past the end of src are empty and leave the carry-over unchanged,
// so the walk stops at src.LineCount().
func (r *Resolver) scanLines(src LineSource, n int, onLine func(int, Environment)) (Environment, error) {
	prev := types.Markdown
	recalculate := false
	n = min(n, src.LineCount())
	for lineNo := 0; lineNo < n; lineNo++ {
		text := src.Line(lineNo)
		env, ok := r.cache.Get(lineNo, text)
		if recalculate || !ok {
			var err error
			env, err = scanner.Scan(text, prev)
			if err != nil {
				return types.Markdown, fmt.Errorf("line %d: %w", lineNo, err)
			}
			r.cache.Put(lineNo, text, env)
			if !recalculate {
				r.debugf("cache miss at line %d, rescanning forward", lineNo)
				r.cache.Truncate(lineNo + 1)
				recalculate = true
			}
		}
		if onLine != nil {
			onLine(lineNo, env)
		}
		prev = env.ToNextLine()
	}
	return prev, nil
}

func (r *Resolver) debugf(format string, args ...interface{}) {
	if !r.debug {
		return
	}
	logger := r.logger
	if logger == nil {
		logger = Logger
	}
	logger.Printf(format, args...)
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Resolve 使用临时缓存计算光标处的环境
func Resolve(src LineSource, line, col int) (Environment, error) {
	return NewResolver().Resolve(src, line, col)
}
