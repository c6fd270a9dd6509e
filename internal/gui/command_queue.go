package gui

import (
	"strings"

	"github.com/appengine-ltd/podo-rush/internal/parser"
)

type CommandSink interface {
	Submit(raw string) bool
}

type queuedCommand struct {
	Raw    string
	Intent parser.Intent
}

// commandQueue buffers command-bar lines between frames. Lines are parsed on
// submit so the queue only ever holds resolved intents.
type commandQueue struct {
	parser *parser.Parser
	ch     chan queuedCommand
}

func newCommandQueue(p *parser.Parser, size int) *commandQueue {
	if size < 1 {
		size = 16
	}
	if p == nil {
		p = parser.New()
	}
	return &commandQueue{parser: p, ch: make(chan queuedCommand, size)}
}

// Submit parses raw and queues it. Blank lines and a full queue are dropped.
func (q *commandQueue) Submit(raw string) bool {
	if q == nil || strings.TrimSpace(raw) == "" {
		return false
	}
	cmd := queuedCommand{Raw: raw, Intent: q.parser.Parse(raw)}
	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

func (q *commandQueue) Next() (queuedCommand, bool) {
	if q == nil {
		return queuedCommand{}, false
	}
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return queuedCommand{}, false
	}
}

func (q *commandQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.ch)
}
