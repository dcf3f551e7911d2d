package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

const (
	pausedKey = "paused"

	// ErrPaused appears when a collateral-moving method is invoked
	// while the registry is administratively halted.
	ErrPaused = "operations paused"
)

// SetPaused sets the registry pause flag.
func SetPaused(ctx storage.Context, paused bool) {
	storage.Put(ctx, pausedKey, paused)
}

// IsPaused returns the registry pause flag.
func IsPaused(ctx storage.Context) bool {
	data := storage.Get(ctx, pausedKey)
	if data != nil {
		return data.(bool)
	}

	return false
}

// CheckNotPaused panics with ErrPaused if the registry is paused.
func CheckNotPaused(ctx storage.Context) {
	if IsPaused(ctx) {
		panic(ErrPaused)
	}
}
