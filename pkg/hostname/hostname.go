package hostname

import (
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	// HeaderSubdomain overrides the routing key derived from the host.
	HeaderSubdomain = "X-Gym-Subdomain"
	// QuerySubdomain overrides the routing key when no header override is present.
	QuerySubdomain = "subdomain"
)

// DefaultPreviewPatterns match deployment-preview hosts that never carry a tenant key.
var DefaultPreviewPatterns = []string{`\.vercel\.app$`}

// Parser extracts a candidate tenant routing key from request hosts.
// It performs no network or storage access.
type Parser struct {
	root     string
	rootPort string
	preview  []*regexp.Regexp
}

// Option configures a Parser.
type Option func(*Parser)

// WithPreviewPatterns replaces the deployment-preview host patterns.
// Patterns are matched against the host with the port stripped.
func WithPreviewPatterns(patterns ...*regexp.Regexp) Option {
	return func(p *Parser) {
		p.preview = p.preview[:0]
		for _, re := range patterns {
			if re != nil {
				p.preview = append(p.preview, re)
			}
		}
	}
}

// NewParser creates a parser for the given root domain, e.g. "gym-nexus.app"
// or "localhost:3000". The port of the root domain is ignored for comparisons.
func NewParser(rootDomain string, opts ...Option) *Parser {
	_, port := SplitPort(strings.TrimSpace(rootDomain))
	p := &Parser{root: Normalize(rootDomain), rootPort: port}
	for _, s := range DefaultPreviewPatterns {
		p.preview = append(p.preview, regexp.MustCompile(s))
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CompilePatterns compiles preview host patterns from configuration.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, s := range patterns {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

// Root returns the configured root domain without port.
func (p *Parser) Root() string {
	return p.root
}

// RootPort returns the port configured with the root domain, if any.
func (p *Parser) RootPort() string {
	return p.rootPort
}

// IsRoot reports whether host is the root domain itself, with or without "www.".
func (p *Parser) IsRoot(host string) bool {
	h := Normalize(host)
	return h == p.root || h == "www."+p.root
}

// IsPreview reports whether host matches a deployment-preview pattern.
func (p *Parser) IsPreview(host string) bool {
	h := Normalize(host)
	for _, re := range p.preview {
		if re.MatchString(h) {
			return true
		}
	}
	return false
}

// Parse returns the routing key carried by host, or "" when the host is the
// root domain, a preview deployment, or has no usable first label.
func (p *Parser) Parse(host string) string {
	h := Normalize(host)
	if h == "" || p.IsRoot(h) || p.IsPreview(h) || isIP(h) {
		return ""
	}

	label, _, _ := strings.Cut(h, ".")
	return keyOrNone(label)
}

// FromRequest applies override precedence: the X-Gym-Subdomain header, then
// the "subdomain" query parameter, then the label extracted from the Host header.
func (p *Parser) FromRequest(r *http.Request) string {
	if v := keyOrNone(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderSubdomain)))); v != "" {
		return v
	}
	if v := keyOrNone(strings.ToLower(strings.TrimSpace(r.URL.Query().Get(QuerySubdomain)))); v != "" {
		return v
	}
	return p.Parse(r.Host)
}

// FromOrigin derives a routing key from an Origin header value such as
// "https://acme.gym-nexus.app:443". Invalid or empty origins yield "".
func (p *Parser) FromOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" || origin == "null" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return ""
	}
	return p.Parse(u.Host)
}

// Normalize lowercases host and strips its port.
func Normalize(host string) string {
	host, _ = SplitPort(strings.ToLower(strings.TrimSpace(host)))
	return strings.TrimSuffix(host, ".")
}

// SplitPort separates an optional ":port" suffix from host.
// Bracketed IPv6 literals keep their brackets.
func SplitPort(host string) (string, string) {
	i := strings.LastIndexByte(host, ':')
	if i < 0 || strings.LastIndexByte(host, ']') > i {
		return host, ""
	}
	return host[:i], host[i+1:]
}

func isIP(host string) bool {
	return net.ParseIP(strings.Trim(host, "[]")) != nil
}

func keyOrNone(label string) string {
	switch label {
	case "", "localhost", "www":
		return ""
	}
	return label
}
