package errors

import (
	"strings"
	"unicode"
)

// ValidateElementID validates a node or edge identifier supplied by a caller.
// Identifiers end up embedded in synthesized edge identifiers, DOT output and
// exported JSON, so the rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElementID, "element id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidElementID, "element id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidElementID, "element id contains invalid control characters")
		}
	}

	return nil
}

// ValidateAttributeName validates an attribute name before it is registered
// on a generator. Attribute names appear as event payload keys and as DOT
// attribute keys, so the same conservative rules as element ids apply.
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttribute, "attribute name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidAttribute, "attribute name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAttribute, "attribute name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	for _, part := range strings.Split(strings.ReplaceAll(path, "\\", "/"), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "output path cannot contain traversal sequences")
		}
	}

	return nil
}
