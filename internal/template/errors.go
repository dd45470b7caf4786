package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates no template exists under the requested name.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced data that
	// does not exist.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a template action survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrNoVariant indicates a kind has no template for the configured
	// language or toolkit.
	ErrNoVariant = errors.New("template: no variant for configuration")

	// ErrUnknownKind indicates an unrecognised artifact kind.
	ErrUnknownKind = errors.New("template: unknown kind")
)
