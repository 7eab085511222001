package mdenv

import "sync"

// Session 为多个文档分别维护 Resolver
//
// 行缓存的键只有行号和文本，不同文档必须使用不同的缓存。
// Session 以文档 ID 区分缓存，并用互斥锁保护，可在多个 goroutine 中使用。
type Session struct {
	mu        sync.Mutex
	resolvers map[string]*Resolver
	opts      []Option
}

// NewSession creates a Session. WithCache is ignored: every document gets
// its own cache.
func NewSession(opts ...Option) *Session {
	return &Session{
		resolvers: make(map[string]*Resolver),
		opts:      opts,
	}
}

// resolver returns the resolver for docID, creating it on first use.
// Caller must hold s.mu.
func (s *Session) resolver(docID string) *Resolver {
	r, ok := s.resolvers[docID]
	if !ok {
		opts := append(append([]Option(nil), s.opts...), WithCache(NewLineCache()))
		r = NewResolver(opts...)
		s.resolvers[docID] = r
	}
	return r
}

// Resolve 计算文档 docID 中光标处的环境
func (s *Session) Resolve(docID string, src LineSource, line, col int) (Environment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver(docID).Resolve(src, line, col)
}

// Annotate 返回文档 docID 每一行结束处的环境
func (s *Session) Annotate(docID string, src LineSource) ([]Environment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver(docID).Annotate(src)
}

// Close 丢弃文档 docID 的缓存
func (s *Session) Close(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resolvers, docID)
}

// Reset 丢弃所有文档的缓存
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.resolvers)
}

// Len returns the number of open documents.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.resolvers)
}
