package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrWitnessFailed appears when the method must be called
	// by the owner of the affected account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	if !runtime.CheckWitness(caller) {
		panic(ErrWitnessFailed)
	}
}
