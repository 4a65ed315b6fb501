package diag

import (
	"github.com/tliron/commonlog"

	"github.com/chazu/jnova/pkg/source"
)

// LoggerSink forwards diagnostics to a commonlog logger as structured
// messages.
type LoggerSink struct {
	log     commonlog.Logger
	catalog Catalog
	src     source.Source
}

// NewLoggerSink creates a sink logging to log with the default catalog.
func NewLoggerSink(log commonlog.Logger, src source.Source) *LoggerSink {
	return &LoggerSink{log: log, catalog: DefaultCatalog(), src: src}
}

// Report implements Sink.
func (s *LoggerSink) Report(sev Severity, key string, pos int, args ...any) {
	msg := s.catalog.Format(key, args...)
	kv := []any{"key", key}
	if s.src != nil {
		kv = append(kv, "source", s.src.Name())
		if p, ok := source.Translate(s.src, pos); ok {
			kv = append(kv, "row", p.Row+1, "column", p.Column+1)
		}
	}
	switch sev {
	case Error:
		s.log.Error(msg, kv...)
	case Warning:
		s.log.Warning(msg, kv...)
	default:
		s.log.Info(msg, kv...)
	}
}
