// Package xembed resolves social timeline embeds for launch projects.
package xembed

import (
	"regexp"
	"strings"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

var profileHosts = []string{
	"www.twitter.com/",
	"mobile.twitter.com/",
	"twitter.com/",
	"www.x.com/",
	"x.com/",
}

// NormalizeHandle reduces a profile URL or handle to the bare handle. It
// strips scheme, known hosts, query, fragment, trailing slashes and a
// leading "@". Anything that is not a valid handle yields "".
func NormalizeHandle(ref string) string {
	ref = strings.TrimSpace(ref)
	if idx := strings.IndexAny(ref, "?#"); idx >= 0 {
		ref = ref[:idx]
	}
	for _, scheme := range []string{"https://", "http://"} {
		if len(ref) >= len(scheme) && strings.EqualFold(ref[:len(scheme)], scheme) {
			ref = ref[len(scheme):]
			break
		}
	}
	for _, host := range profileHosts {
		if len(ref) >= len(host) && strings.EqualFold(ref[:len(host)], host) {
			ref = ref[len(host):]
			break
		}
	}
	ref = strings.Trim(ref, "/")
	if idx := strings.Index(ref, "/"); idx >= 0 {
		ref = ref[:idx]
	}
	ref = strings.TrimPrefix(ref, "@")
	if !handlePattern.MatchString(ref) {
		return ""
	}
	return ref
}

// ProfileURL returns the public profile link for a handle.
func ProfileURL(handle string) string {
	return "https://twitter.com/" + handle
}
