package provider

import (
	"log/slog"
	"sync"

	"golang.org/x/text/cases"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/handler"
	"github.com/philipp01105/unifiedlog/logger"
	"github.com/philipp01105/unifiedlog/oslog"
)

// LoggerProvider is the category-based contract logging frameworks
// consume: a logger per category name, and a shutdown hook.
type LoggerProvider interface {
	CreateLogger(category string) (*logger.Logger, error)
	Close() error
}

var _ LoggerProvider = (*Provider)(nil)

// Provider caches one oslog.Logger per category. It is safe for
// concurrent use.
type Provider struct {
	native       oslog.Native
	subsystem    string
	level        core.Level
	caller       bool
	checkEnabled bool
	echo         handler.Handler
	formatter    *formatter.MessageFormatter

	// loggers maps a case-folded category to its *slot.
	loggers sync.Map
}

// slot holds one category's logger. The once makes creation atomic:
// whoever wins LoadOrStore for the key, every racer waits on the same
// Do and sees the same result.
type slot struct {
	once   sync.Once
	logger *oslog.Logger
	err    error
}

// New creates a provider over the given native binding.
func New(native oslog.Native, opts ...Option) *Provider {
	p := &Provider{
		native: native,
		level:  core.TraceLevel,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.formatter == nil {
		p.formatter = formatter.NewMessageFormatter(formatter.Config{IncludeCaller: p.caller})
	}
	return p
}

// Open creates a provider over the platform's os_log binding. It fails
// with oslog.ErrUnsupported where unified logging does not exist.
func Open(opts ...Option) (*Provider, error) {
	native, err := oslog.Open()
	if err != nil {
		return nil, err
	}
	return New(native, opts...), nil
}

// GetOrCreate returns the os_log destination for category, creating it
// on first use. Categories are compared case-insensitively. If the
// native create fails the error is returned and nothing is cached, so a
// later call tries again.
func (p *Provider) GetOrCreate(category string) (*oslog.Logger, error) {
	key := foldCategory(category)

	v, ok := p.loggers.Load(key)
	if !ok {
		v, _ = p.loggers.LoadOrStore(key, &slot{})
	}
	s := v.(*slot)

	s.once.Do(func() {
		s.logger, s.err = oslog.New(p.native, p.subsystemFor(category), category)
	})
	if s.err != nil {
		p.loggers.CompareAndDelete(key, s)
		return nil, s.err
	}
	return s.logger, nil
}

// CreateLogger returns a framework Logger writing to the category's
// os_log destination. Each call builds a new Logger; the destination
// underneath is shared.
func (p *Provider) CreateLogger(category string) (*logger.Logger, error) {
	h, err := p.handlerFor(category)
	if err != nil {
		return nil, err
	}

	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(p.level).
		WithCategory(category).
		WithCaller(p.caller).
		Build(), nil
}

// Slog returns a *slog.Logger writing to the category's os_log destination.
func (p *Provider) Slog(category string) (*slog.Logger, error) {
	h, err := p.handlerFor(category)
	if err != nil {
		return nil, err
	}
	return slog.New(handler.NewSlogHandler(h, p.level).WithCategory(category)), nil
}

// Len returns the number of cached categories.
func (p *Provider) Len() int {
	n := 0
	p.loggers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close forgets every cached category. Native log objects are not
// released, and the provider stays usable: the next request for a
// category creates a fresh destination.
func (p *Provider) Close() error {
	p.loggers.Clear()
	return nil
}

func (p *Provider) handlerFor(category string) (handler.Handler, error) {
	osl, err := p.GetOrCreate(category)
	if err != nil {
		return nil, err
	}

	var h handler.Handler = handler.NewOSLogHandler(handler.OSLogConfig{
		Logger:       osl,
		Formatter:    p.formatter,
		CheckEnabled: p.checkEnabled,
	})
	if p.echo != nil {
		h = handler.NewMultiHandler(h, sharedHandler{p.echo})
	}
	return h, nil
}

func (p *Provider) subsystemFor(category string) string {
	if p.subsystem != "" {
		return p.subsystem
	}
	return category
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

// foldCategory returns the cache key for category.
func foldCategory(category string) string {
	return folder.String(category)
}

// sharedHandler keeps loggers from closing a handler the caller owns.
type sharedHandler struct {
	handler.Handler
}

func (sharedHandler) Close() error {
	return nil
}

func (s sharedHandler) CanRecycleEntry() bool {
	return handler.CanRecycle(s.Handler)
}

func (s sharedHandler) Enabled(level core.Level) bool {
	if le, ok := s.Handler.(handler.LevelEnabler); ok {
		return le.Enabled(level)
	}
	return true
}
