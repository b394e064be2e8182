package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mazzegi/log"
	"golang.org/x/term"
)

type action int

const (
	actionNone action = iota
	actionPrev
	actionNext
	actionSelect
	actionQuit
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyBack  = 0x7f
)

// keys turns raw terminal bytes into actions. Arrow keys arrive as CSI sequences
// ESC [ <params> C / D; modified arrows carry parameters such as ESC [ 1 ; 5 C.
type keys struct {
	esc    int
	digits string
}

// feed consumes one byte. For actionSelect the typed digits are returned.
func (k *keys) feed(b byte) (action, string) {
	switch k.esc {
	case 1:
		if b == '[' {
			k.esc = 2
			return actionNone, ""
		}
		k.esc = 0
	case 2:
		// parameter and intermediate bytes until the final byte 0x40-0x7e
		if b < 0x40 || b > 0x7e {
			return actionNone, ""
		}
		k.esc = 0
		switch b {
		case 'D':
			return actionPrev, ""
		case 'C':
			return actionNext, ""
		}
		return actionNone, ""
	}

	switch {
	case b == keyEsc:
		k.esc = 1
	case b == 'h':
		return actionPrev, ""
	case b == 'l':
		return actionNext, ""
	case b == 'q' || b == keyCtrlC || b == keyCtrlD:
		return actionQuit, ""
	case b >= '0' && b <= '9':
		k.digits += string(b)
	case b == keyBack:
		if len(k.digits) > 0 {
			k.digits = k.digits[:len(k.digits)-1]
		}
	case b == '\r' || b == '\n':
		if k.digits == "" {
			return actionNone, ""
		}
		typed := k.digits
		k.digits = ""
		return actionSelect, typed
	}
	return actionNone, ""
}

// apply performs act on the calendar and reports whether the view must be redrawn.
func (a *app) apply(act action, typed string) (redraw bool) {
	switch act {
	case actionPrev:
		a.cal.PrevMonth()
		return true
	case actionNext:
		a.cal.NextMonth()
		return true
	case actionSelect:
		ym := a.cal.GetDate().YearMonth()
		day, err := strconv.Atoi(typed)
		if err != nil || day < 1 || day > ym.NumDays() {
			a.printf("no day %s in %s\n", typed, ym)
			return false
		}
		a.cal.SelectDay(day)
	}
	return false
}

func (a *app) runInteractive(fd int, in io.Reader) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make-raw: %w", err)
	}
	defer term.Restore(fd, state)
	log.Debugf("interactive mode on fd %d", fd)

	return a.loop(in)
}

func (a *app) loop(in io.Reader) error {
	a.show(a.cal.View())
	a.printf("h/l: month, <day> enter: select, q: quit\n")

	r := bufio.NewReader(in)
	var k keys
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		act, typed := k.feed(b)
		if act == actionQuit {
			return nil
		}
		if a.apply(act, typed) {
			a.show(a.cal.View())
		}
	}
}
