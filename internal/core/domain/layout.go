package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// YAMLFileName is the name of the YAML recipe manifest.
	YAMLFileName = "recipe.yaml"

	// YMLFileName is the alternate extension of the YAML recipe manifest.
	YMLFileName = "recipe.yml"

	// HCLFileName is the name of the HCL recipe manifest.
	HCLFileName = "recipe.hcl"

	// ConanTextFileName is the name of a Conan text manifest.
	ConanTextFileName = "conanfile.txt"

	// RecipeDirName is the name of the recipe directory under the user cache directory.
	RecipeDirName = "recipe"

	// StateFileName is the name of the read-record store file.
	StateFileName = "state.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestFileNames lists the discoverable manifest names, highest precedence first.
var ManifestFileNames = []string{YAMLFileName, YMLFileName, HCLFileName, ConanTextFileName}

// Format identifies a manifest encoding.
type Format string

const (
	// FormatYAML is the recipe.yaml encoding.
	FormatYAML Format = "yaml"
	// FormatHCL is the recipe.hcl encoding.
	FormatHCL Format = "hcl"
	// FormatConanText is the conanfile.txt encoding.
	FormatConanText Format = "txt"
)

// Formats lists every supported manifest encoding.
var Formats = []Format{FormatYAML, FormatHCL, FormatConanText}

// ParseFormat converts a user supplied format name.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, true
	case "hcl":
		return FormatHCL, true
	case "txt", "conan", "conanfile":
		return FormatConanText, true
	default:
		return "", false
	}
}

// FormatForPath infers the manifest encoding from a file name.
func FormatForPath(path string) (Format, bool) {
	base := filepath.Base(path)
	if strings.EqualFold(base, ConanTextFileName) {
		return FormatConanText, true
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".hcl":
		return FormatHCL, true
	case ".txt":
		return FormatConanText, true
	default:
		return "", false
	}
}

// DefaultStatePath returns the default location of the read-record store.
func DefaultStatePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, RecipeDirName, StateFileName)
	}
	return filepath.Join("."+RecipeDirName, StateFileName)
}
