// Package endpoint derives the backend base URL from the landing page location.
package endpoint

import (
	"net/url"
	"strings"
)

// LocalBaseURL is used when the page is opened straight from disk.
const LocalBaseURL = "http://localhost:5000"

// Resolve returns the base URL for backend calls. A page opened from the
// local filesystem talks to the development server; a served page talks to
// its own origin.
func Resolve(pageURL string) string {
	if o, ok := served(pageURL); ok {
		return o
	}
	return LocalBaseURL
}

// Origin is the value sent in the Origin header of backend requests.
// A local page has the opaque origin "null".
func Origin(pageURL string) string {
	if o, ok := served(pageURL); ok {
		return o
	}
	return "null"
}

func served(pageURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || u.Scheme == "" || u.Scheme == "file" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}
