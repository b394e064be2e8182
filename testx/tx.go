package testx

import (
	"reflect"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

// Tx bundles assertions for a single (sub)test.
type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	tx.t.Fatalf("want %v, have %v", want, have)
}

func (tx *Tx) AssertTrue(b bool, format string, args ...any) {
	tx.t.Helper()
	if b {
		return
	}
	tx.t.Fatalf(format, args...)
}

func (tx *Tx) AssertFalse(b bool, format string, args ...any) {
	tx.t.Helper()
	tx.AssertTrue(!b, format, args...)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}
