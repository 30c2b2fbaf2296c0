package engine

import (
	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/logging"
)

// DefaultViewportHeight is the number of lines reported as visible when no
// height is configured.
const DefaultViewportHeight = 50

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content of the editor.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.buf = buffer.NewBufferFromString(content)
	}
}

// WithBuffer makes the editor operate on an existing buffer.
func WithBuffer(b *buffer.Buffer) Option {
	return func(e *Editor) {
		if b != nil {
			e.buf = b
		}
	}
}

// WithViewportHeight sets how many lines VisibleRanges reports.
func WithViewportHeight(lines int) Option {
	return func(e *Editor) {
		if lines > 0 {
			e.viewportHeight = lines
		}
	}
}

// WithReadOnly rejects every edit transaction.
func WithReadOnly(readOnly bool) Option {
	return func(e *Editor) {
		e.readOnly = readOnly
	}
}

// WithLogger sets the logger used for transaction tracing.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l.WithComponent("engine")
		}
	}
}
