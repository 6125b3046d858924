package utils

import "regexp"

// imageURLPattern matches absolute image URLs anywhere in the text. The
// extension anchors on the suffix of the path component (the path part
// excludes '?'), with an optional query string after it. Not line-anchored:
// labeled lines like "URL: https://..." and bare URLs in running text hit
// the same pattern.
var imageURLPattern = regexp.MustCompile(`(?i)https?://[^\s<>"'?]+\.(?:jpg|jpeg|png|webp|gif)(?:\?[^\s<>"']*)?`)

// endsAtBoundary reports whether the match ending at end is followed by a
// delimiter (or the end of the text). The pattern alone cannot enforce this:
// without it "https://x.com/a.jpg.html" would yield a spurious
// "https://x.com/a.jpg", the extension sitting mid-path rather than at its
// end.
func endsAtBoundary(reply string, end int) bool {
	if end >= len(reply) {
		return true
	}
	switch reply[end] {
	case ' ', '\t', '\n', '\r', '\f', '<', '>', '"', '\'':
		return true
	}
	return false
}

// ExtractImageURLs scans a model reply for candidate image URLs.
// Duplicates are dropped keeping first-seen order; maxResults truncates the
// result (0 or negative means unlimited). No URLs is a normal result, never
// an error.
func ExtractImageURLs(reply string, maxResults int) []string {
	matches := imageURLPattern.FindAllStringIndex(reply, -1)

	urls := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if !endsAtBoundary(reply, m[1]) {
			continue
		}
		url := reply[m[0]:m[1]]
		if seen[url] {
			continue
		}
		seen[url] = true
		urls = append(urls, url)
		if maxResults > 0 && len(urls) >= maxResults {
			break
		}
	}

	return urls
}
