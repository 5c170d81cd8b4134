package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

// IDPlaceholder replaces numeric path segments in normalized endpoints.
const IDPlaceholder = "{id}"

var numericPattern = regexp.MustCompile(`^\d+$`)

// NormalizeEndpoint returns the path of rawURL with query string and fragment
// dropped and numeric segments replaced by {id}.
// e.g., https://host/users/42/profile?x=1 -> /users/{id}/profile
// Unparseable input yields "".
func NormalizeEndpoint(rawURL string) string {
	p, ok := ExtractPath(rawURL)
	if !ok {
		return ""
	}
	return NormalizePath(p)
}

// ExtractPath returns the path component of rawURL as written (still escaped).
// Returns false if rawURL cannot be parsed.
func ExtractPath(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	// RawPath is only set when the written form differs from the default
	// encoding; otherwise EscapedPath reproduces the written form.
	if u.RawPath != "" {
		return u.RawPath, true
	}
	return u.EscapedPath(), true
}

// NormalizePathSegment maps a purely numeric segment to {id}.
func NormalizePathSegment(segment string) string {
	if numericPattern.MatchString(segment) {
		return IDPlaceholder
	}
	return segment
}

// NormalizePath normalizes a path by normalizing each segment.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = NormalizePathSegment(seg)
		}
	}
	return strings.Join(segments, "/")
}
