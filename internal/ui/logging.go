package ui

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// logBufferSize is the amount of log lines held back while the
	// [tea.Program] is busy, further lines are dropped.
	logBufferSize = 1000

	// logBatchSize is the most lines forwarded within a single [LogMsg].
	logBatchSize = 50
)

type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// TeaLogWriter is an [io.Writer] for use inside a [slog.Handler], which
// forwards the written log lines to a [tea.Program] as [LogMsg].
// Write never blocks. Lines that do not fit the buffer are dropped and
// reported with the next forwarded batch.
type TeaLogWriter struct {
	program teaProgramProvider
	lines   chan string
	dropped atomic.Uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter] and starts its
// forwarding goroutine, which runs until [TeaLogWriter.Stop] is called.
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	return newTeaLogWriter(program, logBufferSize)
}

func newTeaLogWriter(program teaProgramProvider, size int) *TeaLogWriter {
	wr := &TeaLogWriter{
		program: program,
		lines:   make(chan string, size),
		stop:    make(chan struct{}),
	}

	go wr.forward()

	return wr
}

// Stop ends the forwarding. Lines written afterwards, or still pending at the
// time of the call, are discarded. Stop may be called more than once.
func (wr *TeaLogWriter) Stop() {
	wr.stopOnce.Do(func() {
		close(wr.stop)
	})
}

// Write queues p for forwarding, or drops it when the buffer is full.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.stop:
		return len(p), nil
	default:
	}

	select {
	case wr.lines <- string(p):
	default:
		wr.dropped.Add(1)
	}

	return len(p), nil
}

func (wr *TeaLogWriter) forward() {
	for {
		select {
		case <-wr.stop:
			return
		case line := <-wr.lines:
			wr.program.Send(LogMsg(wr.batch(line)))
		}
	}
}

// batch joins the first line with whatever else is pending, followed by a
// notice for lines dropped in the meantime.
func (wr *TeaLogWriter) batch(first string) string {
	var b strings.Builder
	b.WriteString(first)

drain:
	for range logBatchSize - 1 {
		select {
		case line := <-wr.lines:
			b.WriteString(line)
		default:
			break drain
		}
	}

	if n := wr.dropped.Swap(0); n > 0 {
		fmt.Fprintf(&b, "(%d log lines dropped)\n", n)
	}

	return b.String()
}
