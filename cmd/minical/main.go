// Command minical shows the calendar picker on the terminal.
//
// By default it mounts the calendar at -value, prints it, and after -set-after
// replaces the date with -set-date through the calendar handle, printing the re-rendered view.
// With -interactive on a terminal, h/l (or the arrow keys) navigate months,
// a day number followed by enter selects a day and q quits.
// -debug adds the calendar's debug log and the view changelog to the output.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mazzegi/log"
	"github.com/mazzegi/minical/calendar"
	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/env"
	"github.com/mazzegi/minical/errorx"
	"github.com/mazzegi/minical/render"
	"golang.org/x/term"
)

func main() {
	cfg, err := loadConfig(env.Load())
	errorx.ExitWhen(err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fd := int(os.Stdin.Fd())
	interactive := cfg.interactive && term.IsTerminal(fd)

	var out io.Writer = os.Stdout
	if interactive {
		out = crlfWriter{w: os.Stdout}
	}
	installLogger(out, cfg.debug)
	if cfg.interactive && !interactive {
		log.Infof("stdin is not a terminal; running the demo instead")
	}

	a := &app{out: out, debug: cfg.debug}
	cal := calendar.New(calendar.Options{
		Value:    cfg.value,
		OnChange: a.onChange,
	})
	defer cal.Close()
	a.cal = cal

	if interactive {
		err = a.runInteractive(fd, os.Stdin)
	} else {
		err = a.runDemo(ctx, cfg.setDate, cfg.setAfter)
	}
	errorx.ExitWhen(err)
}

type app struct {
	cal   *calendar.Calendar
	out   io.Writer
	debug bool
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) onChange(d date.Date) {
	a.printf("selected: %s\n", d)
}

func (a *app) show(v calendar.View) {
	a.printf("%s\n", render.Text(v))
}

// runDemo replaces the date through the handle after delay and prints the view before and after.
func (a *app) runDemo(ctx context.Context, setDate date.Date, delay time.Duration) error {
	h := a.cal.Handle()
	before := a.cal.View()
	a.show(before)
	log.Infof("get-date: %s", h.GetDate())

	sub := a.cal.Subscribe()
	timer := time.AfterFunc(delay, func() {
		log.Infof("set-date: %s", setDate)
		h.SetDate(setDate)
	})
	defer timer.Stop()

	if !sub.Wait(ctx, delay+time.Second) {
		return fmt.Errorf("no re-render within %s", delay+time.Second)
	}
	after := a.cal.View()
	a.show(after)
	log.Infof("get-date: %s (revision %d)", h.GetDate(), after.Revision)

	if a.debug {
		cl, err := render.Changes(before, after)
		if err != nil {
			return fmt.Errorf("view changes: %w", err)
		}
		a.printf("%d view changes\n%s", len(cl), render.FormatChanges(cl))
	}
	return nil
}
