package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Callback template errors
	ErrTemplateNotFound      = fmt.Errorf("callback template not found")
	ErrTemplateRead          = fmt.Errorf("failed to read callback template")
	ErrPlaceholderMissing    = fmt.Errorf("fragment placeholder not found in template")
	ErrPlaceholderDuplicated = fmt.Errorf("fragment placeholder appears more than once")

	// Server errors
	ErrServerFailed = fmt.Errorf("server failed")
)
