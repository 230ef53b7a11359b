package provider

import (
	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/handler"
)

// Option configures a Provider.
type Option func(*Provider)

// WithSubsystem sets the os_log subsystem shared by every category. When
// unset, each category is used as its own subsystem, which suits
// reverse-DNS category names.
func WithSubsystem(subsystem string) Option {
	return func(p *Provider) {
		p.subsystem = subsystem
	}
}

// WithLevel sets the minimum level of loggers created by the provider
// (default: TraceLevel, leaving filtering to os_log).
func WithLevel(level core.Level) Option {
	return func(p *Provider) {
		p.level = level
	}
}

// WithCaller appends the caller's file and line to every message.
func WithCaller(enabled bool) Option {
	return func(p *Provider) {
		p.caller = enabled
	}
}

// WithCheckEnabled makes handlers ask os_log before each write.
func WithCheckEnabled(enabled bool) Option {
	return func(p *Provider) {
		p.checkEnabled = enabled
	}
}

// WithEcho copies every entry to h as well, e.g. a console handler
// during development. The provider never closes h.
func WithEcho(h handler.Handler) Option {
	return func(p *Provider) {
		p.echo = h
	}
}

// WithFormatter sets how message and fields are rendered for os_log.
func WithFormatter(f *formatter.MessageFormatter) Option {
	return func(p *Provider) {
		p.formatter = f
	}
}
