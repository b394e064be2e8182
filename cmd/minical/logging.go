package main

import (
	"bytes"
	"io"

	"github.com/mazzegi/log"
	"github.com/mazzegi/log/console"
	"github.com/mazzegi/log/entry"
)

// installLogger sends log entries to out. Debug entries are dropped unless debug is set.
func installLogger(out io.Writer, debug bool) {
	accept := func(e entry.Entry) bool {
		return debug || e.Level != entry.LevelDebug
	}
	log.Install(log.NewStdLogger("minical", log.NewFilter(accept, console.NewWriter(console.WithStream(out)))))
}

// crlfWriter turns "\n" into "\r\n"; a terminal in raw mode does not return the carriage itself.
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	if _, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
