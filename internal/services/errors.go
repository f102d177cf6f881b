package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSource marks a missing or non-directory source root. Fatal;
	// nothing is processed.
	ErrInvalidSource = errors.New("invalid source")
	// ErrConfiguration marks unusable configuration. Fatal.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks a failed external binary invocation.
	ErrExternalTool = errors.New("external tool error")
	// ErrTransient marks recoverable failures that affect a single file.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether the error should abort the run rather than be
// recorded against a single file.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvalidSource) || errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
