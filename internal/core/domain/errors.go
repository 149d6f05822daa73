package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDeclaration is returned when a manifest entry does not match its required format,
	// or when a manifest declares nothing to resolve.
	ErrMalformedDeclaration = zerr.New("malformed declaration")

	// ErrDuplicateDependency is returned when a dependency name appears twice within one category.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrDuplicateEntry is returned when a setting or generator is listed twice.
	ErrDuplicateEntry = zerr.New("duplicate entry")

	// ErrDependencyNotDeclared is returned when a looked up dependency is not in the manifest.
	ErrDependencyNotDeclared = zerr.New("dependency not declared")

	// ErrSettingNotDeclared is returned when a looked up setting axis is not in the manifest.
	ErrSettingNotDeclared = zerr.New("setting not declared")

	// ErrManifestRejected marks a failure caused by the manifest content rather than by I/O.
	ErrManifestRejected = zerr.New("manifest rejected")

	// ErrManifestNotFound is returned when no manifest file can be discovered.
	ErrManifestNotFound = zerr.New("could not find a recipe manifest")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file is not valid in its format.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrManifestEncodeFailed is returned when a manifest cannot be encoded.
	ErrManifestEncodeFailed = zerr.New("failed to encode manifest")

	// ErrUnsupportedFormat is returned for an unknown manifest format or file name.
	ErrUnsupportedFormat = zerr.New("unsupported manifest format")

	// ErrUnknownSection is returned when a conanfile.txt contains a section recipe does not understand.
	ErrUnknownSection = zerr.New("unknown manifest section")

	// ErrNoManifestsSpecified is returned when validation is asked to check nothing.
	ErrNoManifestsSpecified = zerr.New("no manifests specified")

	// ErrStoreReadFailed is returned when the read-record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read record store")

	// ErrStoreUnmarshalFailed is returned when the read-record store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal record store")

	// ErrStoreMarshalFailed is returned when the read-record store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal record store")

	// ErrStoreCreateFailed is returned when the read-record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreWriteFailed is returned when the read-record store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record store")

	// ErrInvalidLogLevel is returned when RECIPE_LOG_LEVEL is not a known level.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected debug, info, warn or error")

	// ErrInvalidCacheSize is returned when RECIPE_CACHE_SIZE is not a positive integer.
	ErrInvalidCacheSize = zerr.New("invalid cache size, expected a positive integer")

	// ErrUnsupportedOutput is returned when an output mode is not text, json or yaml.
	ErrUnsupportedOutput = zerr.New("unsupported output mode, expected text, json or yaml")
)
