// Package cache 按行号缓存行尾环境
package cache

import "github.com/riverfjs/mdenv-go/internal/types"

// Entry 记录某一行上次扫描时的文本和行尾环境
type Entry struct {
	Text  string
	Env   types.Environment
	valid bool
}

// LineCache memoizes end-of-line environments by line index.
//
// An entry is only returned while its stored text equals the caller's
// current text. LineCache is not safe for concurrent use.
type LineCache struct {
	entries []Entry
}

// New creates an empty LineCache.
func New() *LineCache {
	return &LineCache{
		entries: make([]Entry, 0),
	}
}

// Get returns the cached environment for line i if text is unchanged.
func (c *LineCache) Get(i int, text string) (types.Environment, bool) {
	if i < 0 || i >= len(c.entries) {
		return types.Environment{}, false
	}
	e := c.entries[i]
	if !e.valid || e.Text != text {
		return types.Environment{}, false
	}
	return e.Env, true
}

// Put stores (or overwrites) the entry for line i.
func (c *LineCache) Put(i int, text string, env types.Environment) {
	if i < 0 {
		return
	}
	for len(c.entries) <= i {
		c.entries = append(c.entries, Entry{})
	}
	c.entries[i] = Entry{Text: text, Env: env, valid: true}
}

// Truncate drops every entry at index n or later.
func (c *LineCache) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(c.entries) {
		clear(c.entries[n:])
		c.entries = c.entries[:n]
	}
}

// Len returns the number of line slots held, including gaps.
func (c *LineCache) Len() int {
	return len(c.entries)
}

// Reset clears the cache.
func (c *LineCache) Reset() {
	c.entries = c.entries[:0]
}
