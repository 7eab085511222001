package mdenv

import "log"

// ResolverOptions holds options for a Resolver.
type ResolverOptions struct {
	Cache  *LineCache
	Logger *log.Logger
	Debug  bool
}

// Option is a function that configures ResolverOptions.
type Option func(*ResolverOptions)

// WithCache sets the line cache used by the resolver.
func WithCache(c *LineCache) Option {
	return func(opts *ResolverOptions) {
		opts.Cache = c
	}
}

// WithLogger sets a logger for this resolver instead of the package Logger.
func WithLogger(logger *log.Logger) Option {
	return func(opts *ResolverOptions) {
		opts.Logger = logger
	}
}

// WithDebug enables logging of cache invalidation.
func WithDebug(enable bool) Option {
	return func(opts *ResolverOptions) {
		opts.Debug = enable
	}
}

// defaultResolverOptions returns the default resolver options.
func defaultResolverOptions() *ResolverOptions {
	return &ResolverOptions{
		Debug: false,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ResolverOptions {
	options := defaultResolverOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Cache == nil {
		options.Cache = NewLineCache()
	}
	return options
}
