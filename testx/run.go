package testx

import (
	"fmt"
	"testing"
)

func Name(i int) string {
	return fmt.Sprintf("test_#%03d", i)
}

// RunTests runs every test as a named subtest of tx.
func RunTests[TEST any](tx *Tx, tests []TEST, runFnc func(tx *Tx, test TEST)) {
	for i, test := range tests {
		tx.T().Run(Name(i), func(t *testing.T) {
			runFnc(NewTx(t), test)
		})
	}
}

// RunTestsParallel is RunTests with every subtest marked parallel.
func RunTestsParallel[TEST any](tx *Tx, tests []TEST, runFnc func(tx *Tx, test TEST)) {
	for i, test := range tests {
		test := test
		tx.T().Run(Name(i), func(t *testing.T) {
			t.Parallel()
			runFnc(NewTx(t), test)
		})
	}
}
