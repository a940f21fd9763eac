package mongo

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultDatabase is the database name NormalizeURI uses when none is given.
const DefaultDatabase = "saas_db"

// defaultQuery lists the options NormalizeURI adds when the caller has not set them.
var defaultQuery = []struct{ key, value string }{
	{"retryWrites", "true"},
	{"w", "majority"},
}

var (
	schemePattern      = regexp.MustCompile(`^mongodb(\+srv)?://.+`)
	credentialsPattern = regexp.MustCompile(`//([^:/@]*):([^@]+)@`)
	dbNamePattern      = regexp.MustCompile(`/([^/?]+)(\?|$)`)
)

// parseURI is the structured strategy shared by the helpers below.
// It only accepts hierarchical URLs (scheme://...); anything else goes to the
// string-based fallback of each helper.
func parseURI(uri string) (*url.URL, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return nil, false
	}
	return u, true
}

// NormalizeURI rewrites uri so its path is /{dbName} and its query carries
// retryWrites=true and w=majority. Existing query values are kept, as is their
// order. An empty dbName means DefaultDatabase.
//
// Any database already present in the path is replaced by dbName.
//
// When uri is not a parseable URL the query is cut off and
// "{dbName}?retryWrites=true&w=majority" is appended after a trailing slash.
func NormalizeURI(uri, dbName string) string {
	if dbName == "" {
		dbName = DefaultDatabase
	}
	if u, ok := parseURI(uri); ok {
		return normalizeParsed(u, dbName)
	}
	return normalizeRaw(uri, dbName)
}

func normalizeParsed(u *url.URL, dbName string) string {
	u.Path = "/" + dbName
	u.RawPath = ""

	existing := u.Query()
	missing := make([]string, 0, len(defaultQuery))
	for _, p := range defaultQuery {
		if !existing.Has(p.key) {
			missing = append(missing, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
		}
	}
	if len(missing) > 0 {
		if u.RawQuery != "" {
			missing = append([]string{u.RawQuery}, missing...)
		}
		u.RawQuery = strings.Join(missing, "&")
	}
	return u.String()
}

func normalizeRaw(uri, dbName string) string {
	base, _, _ := strings.Cut(uri, "?")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	pairs := make([]string, 0, len(defaultQuery))
	for _, p := range defaultQuery {
		pairs = append(pairs, p.key+"="+p.value)
	}
	return base + dbName + "?" + strings.Join(pairs, "&")
}

// SanitizeURI replaces the user:password part of uri with ***:*** so it can be
// logged. A URI without a password is returned unchanged; an empty user name
// does not exempt the password.
func SanitizeURI(uri string) string {
	u, ok := parseURI(uri)
	if !ok {
		loc := credentialsPattern.FindStringIndex(uri)
		if loc == nil {
			return uri
		}
		return uri[:loc[0]] + "//***:***@" + uri[loc[1]:]
	}

	if u.User == nil {
		return uri
	}
	if pw, set := u.User.Password(); !set || pw == "" {
		return uri
	}
	return redactUserinfo(uri)
}

// redactUserinfo swaps everything before the last '@' of the authority.
// It works on the raw string so the rest of uri keeps its original encoding.
func redactUserinfo(uri string) string {
	_, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	prefix := uri[:len(uri)-len(rest)]

	authority := rest
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		authority = rest[:end]
	}
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return uri
	}
	return prefix + "***:***" + rest[at:]
}

// ValidateURI reports whether uri looks like a usable MongoDB connection
// string: it must use the mongodb:// or mongodb+srv:// scheme, parse as a URL
// and name a host. Credentials are not checked in any environment.
func ValidateURI(uri string) bool {
	if uri == "" || !schemePattern.MatchString(uri) {
		return false
	}
	u, ok := parseURI(uri)
	if !ok {
		return false
	}
	return u.Hostname() != ""
}

// DatabaseName returns the database named in the path of uri.
// The second result is false when the path is empty or "/".
func DatabaseName(uri string) (string, bool) {
	u, ok := parseURI(uri)
	if !ok {
		m := dbNamePattern.FindStringSubmatch(uri)
		if m == nil {
			return "", false
		}
		return m[1], true
	}

	if u.Path == "" || u.Path == "/" {
		return "", false
	}
	return strings.TrimPrefix(u.Path, "/"), true
}

var localHosts = map[string]bool{
	"localhost":            true,
	"127.0.0.1":            true,
	"0.0.0.0":              true,
	"host.docker.internal": true,
}

// IsLocalURI reports whether uri points at a local or private-network host.
func IsLocalURI(uri string) bool {
	u, ok := parseURI(uri)
	if !ok {
		return strings.Contains(uri, "localhost") ||
			strings.Contains(uri, "127.0.0.1") ||
			strings.Contains(uri, "0.0.0.0")
	}

	host := u.Hostname()
	return localHosts[host] ||
		strings.HasPrefix(host, "192.168.") ||
		strings.HasPrefix(host, "10.")
}
