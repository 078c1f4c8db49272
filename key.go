package objects

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveKey determines the object key for an upload. An explicit key wins
// after normalization; otherwise the key is the base filename of localPath.
// The result is never empty and never begins with a separator.
func resolveKey(localPath, explicit string) (string, error) {
	if explicit != "" {
		return normalizeKey(explicit)
	}

	base := filepath.Base(localPath)
	if base == "." || base == ".." || base == "/" || base == string(filepath.Separator) {
		return "", keyError(localPath)
	}
	return base, nil
}

// normalizeKey converts backslashes to forward slashes, collapses duplicate
// separators, and strips the leading one. Traversal segments are rejected to
// keep keys from escaping their prefix.
func normalizeKey(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}
	key = strings.TrimPrefix(key, "/")

	if key == "" || strings.HasSuffix(key, "/") {
		return "", keyError(key)
	}
	for seg := range strings.SplitSeq(key, "/") {
		if seg == ".." {
			return "", keyError(key)
		}
	}
	return key, nil
}

func keyError(key string) *Error {
	return &Error{Kind: KindGeneric, Code: "InvalidKey", Message: fmt.Sprintf("cannot derive object key from %q", key)}
}
