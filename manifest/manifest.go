// SPDX-License-Identifier: MIT

// Package manifest rewrites newline-delimited PDK file lists in natural order.
package manifest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/natsort"
	"gitlab.com/fisherprime/natsort/types"
)

type (
	// Config defines configuration options for the Sorter's operations.
	Config struct {
		// Logger for manifest messages.
		Logger logrus.FieldLogger
		Debug  bool

		// Unique drops repeated names, keeping the first occurrence.
		Unique bool

		// Workers bounds the number of manifests processed concurrently.
		Workers int

		// SortOptions are passed through to natsort.
		SortOptions []natsort.Option
	}

	// Sorter reads, orders & rewrites manifests.
	Sorter struct {
		cfg *Config
	}

	// Option defines the Sorter functional option type.
	Option func(*Config)
)

const (
	defWorkers = 4

	// maxLineSize bounds a single manifest entry.
	maxLineSize = 1 << 20

	defFileMode os.FileMode = 0o644
)

// Manifest errors.
var (
	ErrEmptyPath          = errors.New("empty manifest path")
	ErrNotSorted          = errors.New("manifest is not in natural order")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Workers: defWorkers,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() (err error) {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Workers == 0 {
		c.Workers = defWorkers
	}
	if c.Workers < 0 {
		err = fmt.Errorf("%w: %d", ErrInvalidWorkerCount, c.Workers)
	}

	return
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithUnique configures de-duplication of manifest entries.
func WithUnique(unique bool) Option { return func(c *Config) { c.Unique = unique } }

// WithWorkers configures the concurrent manifest limit.
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

// WithSortOptions configures the options passed to natsort.
func WithSortOptions(opts ...natsort.Option) Option {
	return func(c *Config) { c.SortOptions = append(c.SortOptions, opts...) }
}

// New instantiates a Sorter.
func New(opts ...Option) (s *Sorter, err error) {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err = cfg.Validate(); err != nil {
		return
	}

	if cfg.Debug {
		cfg.SortOptions = append(cfg.SortOptions, natsort.WithDebug(true), natsort.WithLogger(cfg.Logger))
	}

	s = &Sorter{cfg: cfg}

	return
}

// Config retrieves the Sorter's Config.
func (s *Sorter) Config() *Config { return s.cfg }

// Read parses a newline-delimited manifest.
//
// Trailing carriage returns are stripped & blank lines dropped.
func Read(r io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lines = make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	err = scanner.Err()

	return
}

// Write outputs one name per line.
func Write(w io.Writer, lines []string) (err error) {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err = bw.WriteString(line); err != nil {
			return
		}
		if err = bw.WriteByte('\n'); err != nil {
			return
		}
	}

	return bw.Flush()
}

// SortLines orders manifest entries naturally, returning a new slice.
func (s *Sorter) SortLines(lines []string) []string {
	sorted := make(types.StringSlice, 0, len(lines))
	if s.cfg.Unique {
		seen := make(map[string]struct{}, len(lines))
		for _, line := range lines {
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			sorted = append(sorted, line)
		}
	} else {
		sorted = append(sorted, lines...)
	}

	sorted.Sort(s.cfg.SortOptions...)

	return sorted
}

// IsSorted reports whether manifest entries are already in natural order.
func (s *Sorter) IsSorted(lines []string) bool {
	if s.cfg.Unique && hasDuplicates(lines) {
		return false
	}

	return natsort.IsSorted(lines, s.cfg.SortOptions...)
}

// SortStream reads a manifest from r, writing its sorted form to w.
func (s *Sorter) SortStream(r io.Reader, w io.Writer) (err error) {
	lines, err := Read(r)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	return Write(w, s.SortLines(lines))
}

// CheckStream reads a manifest from r & reports ErrNotSorted when out of order.
func (s *Sorter) CheckStream(r io.Reader) (err error) {
	lines, err := Read(r)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	if !s.IsSorted(lines) {
		err = ErrNotSorted
	}

	return
}

// SortFile sorts the manifest at path, overwriting it atomically.
func (s *Sorter) SortFile(ctx context.Context, path string) (err error) {
	lines, mode, err := s.readFile(ctx, path)
	if err != nil {
		return
	}

	sorted := s.SortLines(lines)
	if s.cfg.Debug {
		s.cfg.Logger.Debugf("manifest (%s): %s", path, spew.Sdump(sorted))
	}

	if err = writeAtomic(ctx, path, mode, sorted); err != nil {
		return fmt.Errorf("(%s) %w", path, err)
	}

	s.cfg.Logger.WithField("manifest", path).Infof("sorted %d entries", len(sorted))

	return
}

// CheckFile reports ErrNotSorted when the manifest at path is out of order.
func (s *Sorter) CheckFile(ctx context.Context, path string) (err error) {
	lines, _, err := s.readFile(ctx, path)
	if err != nil {
		return
	}

	if !s.IsSorted(lines) {
		err = fmt.Errorf("(%s) %w", path, ErrNotSorted)
	}

	return
}

// SortFiles sorts several manifests concurrently.
func (s *Sorter) SortFiles(ctx context.Context, paths ...string) error {
	return s.each(ctx, "sort", s.SortFile, paths)
}

// CheckFiles checks several manifests concurrently.
func (s *Sorter) CheckFiles(ctx context.Context, paths ...string) error {
	return s.each(ctx, "check", s.CheckFile, paths)
}

// each runs fn over paths on a worker pool, aggregating the failures.
func (s *Sorter) each(ctx context.Context, operation string, fn func(context.Context, string) error, paths []string) (err error) {
	if len(paths) < 1 {
		return
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return
	}
	defer pool.Release()

	done, errChan := make(chan bool, len(paths)), make(chan error, len(paths))
	var processed types.SafeCounter

	for _, path := range paths {
		path := path
		if err = pool.Submit(func() {
			if e := fn(ctx, path); e != nil {
				errChan <- e
				return
			}
			processed.Inc()
			done <- true
		}); err != nil {
			errChan <- fmt.Errorf("(%s) %w", path, err)
		}
	}

	err = types.MonitorChannels(ctx, len(paths), done, errChan, "manifest "+operation)
	s.cfg.Logger.Debugf("manifest %s: %d/%d succeeded", operation, processed.Value(), len(paths))

	return
}

func (s *Sorter) readFile(ctx context.Context, path string) (lines []string, mode os.FileMode, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	if path == "" {
		err = ErrEmptyPath
		return
	}

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return
	}
	mode = info.Mode().Perm()

	if lines, err = Read(f); err != nil {
		err = fmt.Errorf("(%s) read manifest: %w", path, err)
	}

	return
}

// writeAtomic replaces path through a temporary file in the same directory.
func writeAtomic(ctx context.Context, path string, mode os.FileMode, lines []string) (err error) {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if mode == 0 {
		mode = defFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".natsort-*")
	if err != nil {
		return
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(mode); err != nil {
		return
	}
	if err = Write(tmp, lines); err != nil {
		return
	}
	if err = tmp.Sync(); err != nil {
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}

	return os.Rename(tmpPath, path)
}

func hasDuplicates(lines []string) bool {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			return true
		}
		seen[line] = struct{}{}
	}

	return false
}
