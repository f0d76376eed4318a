package translatable

import (
	"io/fs"
	"log/slog"
)

// Option configures the engine during New.
type Option func(*settings)

type settings struct {
	fsys     fs.FS
	files    []File
	seekMode SeekMode
	overlap  Overlap
	logger   *slog.Logger
}

// WithFS loads every .toml, .yaml, and .yml file found in fsys,
// descending into subdirectories.
func WithFS(fsys fs.FS) Option {
	return func(s *settings) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithFiles adds raw translation sources. The identifier's extension selects
// the codec. May be combined with WithFS.
func WithFiles(files ...File) Option {
	return func(s *settings) {
		s.files = append(s.files, files...)
	}
}

// WithSeekMode sets the base file ordering.
// Defaults to SeekAlphabetical.
func WithSeekMode(mode SeekMode) Option {
	return func(s *settings) {
		if mode != "" {
			s.seekMode = mode
		}
	}
}

// WithOverlap sets the cross-file precedence policy.
// Defaults to OverlapOverwrite.
func WithOverlap(overlap Overlap) Option {
	return func(s *settings) {
		if overlap != "" {
			s.overlap = overlap
		}
	}
}

// WithLogger sets a logger for load and resolution debug events.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
