package translatable

import (
	"os"
	"sync"
)

// defaultInstance loads the process-wide engine exactly once. OnceValues
// guarantees concurrent first callers all observe the same fully-loaded
// result, and keeps a failed load failed: the error is returned again
// instead of retrying.
var defaultInstance = sync.OnceValues(func() (*Translatable, error) {
	cfg, err := LoadConfig(ConfigFile)
	if err != nil {
		return nil, err
	}
	return New(
		WithFS(os.DirFS(cfg.Path)),
		WithSeekMode(cfg.SeekMode),
		WithOverlap(cfg.Overlap),
	)
})

// Default returns the process-wide engine, loading it on first use from the
// optional translatable.toml configuration in the working directory.
func Default() (*Translatable, error) {
	return defaultInstance()
}
