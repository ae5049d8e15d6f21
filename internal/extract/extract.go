// Package extract projects decoded records onto semantic roles and
// produces login credentials.
package extract

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/forensitools/loginrake/internal/reveal"
	"github.com/forensitools/loginrake/internal/sqlite"
)

// Login is one recovered credential record.
type Login struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// Stats counts extraction outcomes, including the suppressed ones, so
// that dropped records stay observable.
type Stats struct {
	Candidates      int
	RevealFailures  int
	MissingUsername int
	MissingSecret   int
	Emitted         int
}

type Option func(*Extractor)

// WithScope sets the identity scope passed to the revealer.
func WithScope(scope reveal.Scope) Option {
	return func(e *Extractor) {
		e.scope = scope
	}
}

// Extractor turns records into Logins according to a schema. A record
// only becomes a Login when both the username and the revealed secret
// are non-empty; everything else is dropped and counted.
type Extractor struct {
	schema   Schema
	revealer reveal.Revealer
	scope    reveal.Scope
	logger   *zap.Logger
	stats    Stats
}

func NewExtractor(schema Schema, revealer reveal.Revealer, logger *zap.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Extractor{
		schema:   schema,
		revealer: revealer,
		scope:    reveal.CurrentUser,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract projects one record onto the schema roles. The second return
// is false when the record yields no credential; a single bad record
// never interrupts a scan.
func (e *Extractor) Extract(aRecord sqlite.Record) (Login, bool) {
	e.stats.Candidates++

	var aLogin Login
	for i, field := range aRecord.Fields {
		if i >= len(e.schema) {
			break
		}
		switch e.schema[i] {
		case URL:
			aLogin.URL = decodeSingleByteText(field)
		case Username:
			aLogin.Username = decodeSingleByteText(field)
		case Secret:
			plain, err := e.revealer.Reveal(field, e.scope)
			if err != nil {
				e.stats.RevealFailures++
				e.logger.Debug("secret not recoverable",
					zap.Int64("row_id", aRecord.RowID),
					zap.Error(err))
				continue
			}
			aLogin.Secret = string(plain)
		}
	}

	if aLogin.Username == "" {
		e.stats.MissingUsername++
		return Login{}, false
	}
	if aLogin.Secret == "" {
		e.stats.MissingSecret++
		return Login{}, false
	}
	e.stats.Emitted++
	return aLogin, true
}

func (e *Extractor) Stats() Stats {
	return e.stats
}

// decodeSingleByteText interprets field bytes as Windows-1252, one byte
// per character. URL and username columns in the targeted schema are
// stored in that legacy code page, not UTF-8.
func decodeSingleByteText(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(decoded)
}
