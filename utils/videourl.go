package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	schemeRe     = regexp.MustCompile(`(?i)^https?://`)
	watchParamRe = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`)
)

const embedBase = "https://www.youtube.com/embed/"

// ToEmbedURL rewrites an arbitrary video link into a form a player
// frame can load. YouTube watch URLs and youtu.be short links become
// /embed/ URLs; anything else passes through with a scheme prepended
// when missing. The function is total: unparseable input degrades to a
// best-effort string, never an error.
func ToEmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	candidate := raw
	if !schemeRe.MatchString(candidate) {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		// Unparseable even with a scheme; scan the original string for
		// a watch id before giving up.
		if m := watchParamRe.FindStringSubmatch(raw); m != nil {
			return embedBase + m[1]
		}
		return raw
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")

	if strings.Contains(host, "youtube.com") {
		if v := u.Query().Get("v"); v != "" {
			return embedBase + v
		}
		if strings.Contains(u.Path, "/embed/") {
			return candidate
		}
	}

	if host == "youtu.be" {
		if id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/"); id != "" {
			return embedBase + id
		}
	}

	// Inputs like "watch?v=..." parse fine but match neither host
	// branch; the raw scan still recovers the id.
	if m := watchParamRe.FindStringSubmatch(raw); m != nil {
		return embedBase + m[1]
	}

	return candidate
}
