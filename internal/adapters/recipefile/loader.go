// Package recipefile reads and writes dependency manifests in YAML, HCL and conanfile.txt form.
package recipefile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader on the local filesystem.
type Loader struct {
	logger ports.Logger
	cache  *lru.Cache[string, cachedManifest]
}

// cachedManifest is valid while the file keeps the same size and modification time.
type cachedManifest struct {
	size     int64
	modTime  time.Time
	manifest *domain.Manifest
}

// NewLoader creates a Loader that keeps up to cacheSize decoded manifests.
func NewLoader(logger ports.Logger, cacheSize int) (*Loader, error) {
	cache, err := lru.New[string, cachedManifest](cacheSize)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create manifest cache"), "size", cacheSize)
	}
	return &Loader{logger: logger, cache: cache}, nil
}

// Discover walks up from cwd and returns the first manifest found.
// Within one directory, domain.ManifestFileNames decides precedence.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		for _, name := range domain.ManifestFileNames {
			candidate := filepath.Join(currentDir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

// Load reads and validates the manifest at path, picking the format from the file name.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	format, ok := domain.FormatForPath(path)
	if !ok {
		return nil, zerr.With(domain.ErrUnsupportedFormat, "path", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	if cached, hit := l.cache.Get(absPath); hit && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		l.logger.Debug(fmt.Sprintf("using cached manifest %s", absPath))
		return cached.manifest, nil
	}

	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	m, err := l.Decode(data, format, absPath)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.cache.Add(absPath, cachedManifest{size: info.Size(), modTime: info.ModTime(), manifest: m})
	l.logger.Debug(fmt.Sprintf("decoded %s manifest %s", format, absPath))

	return m, nil
}

// Decode parses manifest content in the given format. filename is only used in diagnostics.
func (l *Loader) Decode(data []byte, format domain.Format, filename string) (*domain.Manifest, error) {
	var (
		decl domain.Declaration
		err  error
	)

	switch format {
	case domain.FormatYAML:
		decl, err = decodeYAML(data)
	case domain.FormatHCL:
		decl, err = decodeHCL(data, filename)
	case domain.FormatConanText:
		var ignored []string
		decl, ignored, err = decodeConanText(data)
		for _, section := range ignored {
			l.logger.Warn(fmt.Sprintf("section [%s] in %s is not a dependency declaration, ignoring", section, filename))
		}
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "format", string(format))
	}
	if err != nil {
		return nil, err
	}

	return domain.NewManifest(decl)
}
