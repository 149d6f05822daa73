// Package app implements the application layer for recipe.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader        ports.ManifestLoader
	encoder       ports.ManifestEncoder
	fingerprinter ports.Fingerprinter
	store         ports.ReadRecordStore
	telemetry     ports.Telemetry
	logger        ports.Logger
	now           func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	encoder ports.ManifestEncoder,
	fingerprinter ports.Fingerprinter,
	store ports.ReadRecordStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:        loader,
		encoder:       encoder,
		fingerprinter: fingerprinter,
		store:         store,
		telemetry:     telemetry,
		logger:        log,
		now:           time.Now,
	}
}

// WithClock replaces the clock used to timestamp read records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ReadOptions selects the manifest to read.
type ReadOptions struct {
	// Path is an explicit manifest path. When empty the manifest is discovered from Dir.
	Path string
	// Dir is the directory discovery starts from.
	Dir string
}

// Inspection is a successfully read manifest.
type Inspection struct {
	Path     string
	Manifest *domain.Manifest
}

// Read locates, decodes and validates a manifest. It never writes anything.
func (a *App) Read(ctx context.Context, opts ReadOptions) (*Inspection, error) {
	path := opts.Path
	if path == "" {
		_, vertex := a.telemetry.Record(ctx, "discover")
		discovered, err := a.loader.Discover(opts.Dir)
		if err == nil {
			vertex.Log(discovered)
		}
		vertex.Complete(err)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	a.logger.Debug(fmt.Sprintf("reading manifest %s", path))

	_, vertex := a.telemetry.Record(ctx, "decode "+path)
	m, err := a.loader.Load(path)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	return &Inspection{Path: path, Manifest: m}, nil
}

// StatusResult reports whether a manifest changed since its last recorded read.
type StatusResult struct {
	Path        string
	Fingerprint string
	// Previous is the fingerprint of the last recorded read, empty if there was none.
	Previous string
	Changed  bool
}

// Status reads a manifest, compares its fingerprint with the stored record and stores the new one.
func (a *App) Status(ctx context.Context, opts ReadOptions) (*StatusResult, error) {
	inspection, err := a.Read(ctx, opts)
	if err != nil {
		return nil, err
	}

	_, vertex := a.telemetry.Record(ctx, "fingerprint")
	result, err := a.status(inspection, vertex)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *App) status(inspection *Inspection, vertex ports.Vertex) (*StatusResult, error) {
	result := &StatusResult{
		Path:        inspection.Path,
		Fingerprint: a.fingerprinter.Fingerprint(inspection.Manifest),
		Changed:     true,
	}

	// Records are keyed by absolute path.
	key, err := filepath.Abs(inspection.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", inspection.Path)
	}

	previous, err := a.store.Get(key)
	if err != nil {
		return nil, zerr.With(err, "path", key)
	}
	if previous != nil {
		result.Previous = previous.Fingerprint
		if previous.Fingerprint == result.Fingerprint {
			result.Changed = false
			vertex.Cached()
		}
	}

	record := domain.ReadRecord{
		Path:        key,
		Fingerprint: result.Fingerprint,
		Timestamp:   a.now(),
	}
	if err := a.store.Put(record); err != nil {
		return nil, zerr.With(err, "path", key)
	}

	return result, nil
}

// ValidationResult is the outcome of reading one manifest.
type ValidationResult struct {
	Path string
	Err  error
}

// Validate reads every path concurrently. Results keep the order of paths.
// The returned error joins domain.ErrManifestRejected with every failure.
func (a *App) Validate(ctx context.Context, paths []string) ([]ValidationResult, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoManifestsSpecified
	}

	results := make([]ValidationResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			_, err := a.Read(ctx, ReadOptions{Path: path})
			results[i] = ValidationResult{Path: path, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed []error
	for _, r := range results {
		if r.Err != nil {
			a.logger.Debug(fmt.Sprintf("manifest %s rejected: %v", r.Path, r.Err))
			failed = append(failed, r.Err)
		}
	}
	if len(failed) > 0 {
		return results, errors.Join(append([]error{domain.ErrManifestRejected}, failed...)...)
	}
	return results, nil
}

// Convert reads a manifest and writes it to w in another format.
func (a *App) Convert(ctx context.Context, opts ReadOptions, w io.Writer, format domain.Format) error {
	inspection, err := a.Read(ctx, opts)
	if err != nil {
		return err
	}

	if err := a.encoder.Encode(w, inspection.Manifest, format); err != nil {
		return zerr.With(err, "path", inspection.Path)
	}
	return nil
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
