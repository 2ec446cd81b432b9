package webfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// skippedElements are stripped before text extraction; they carry chrome,
// not deadline information.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"nav":      true,
	"footer":   true,
	"header":   true,
}

// FetchText downloads the page at rawURL and returns its visible text,
// truncated to the configured excerpt size.
func (f *fetcherImpl) FetchText(ctx context.Context, rawURL string) (string, error) {
	if err := validateTarget(rawURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("webfetch: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("webfetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webfetch: HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("webfetch: failed to read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	var text string
	if strings.Contains(contentType, "text/plain") {
		text = string(body)
	} else {
		text, err = htmlToText(string(body))
		if err != nil {
			return "", fmt.Errorf("webfetch: failed to parse HTML: %w", err)
		}
	}

	text = strings.TrimSpace(multiSpacePattern.ReplaceAllString(text, " "))
	return truncateExcerpt(text, f.maxExcerptBytes), nil
}

// truncateExcerpt cuts text to at most max bytes, backing off to a rune
// boundary so a multi-byte character is never split.
func truncateExcerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// validateTarget rejects non-HTTP schemes and local or private addresses so
// the helper cannot be pointed at internal services.
func validateTarget(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("webfetch: invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webfetch: URL must start with http:// or https://, got %q", rawURL)
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("webfetch: URL %q has no host", rawURL)
	}
	if isBlockedHost(host) {
		return fmt.Errorf("webfetch: refusing to fetch from local/internal address %q", host)
	}
	return nil
}

func isBlockedHost(host string) bool {
	lower := strings.ToLower(host)
	if lower == "localhost" || strings.HasSuffix(lower, ".localhost") || lower == "0.0.0.0" {
		return true
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

func htmlToText(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	extractText(doc, &sb, 0)
	return sb.String(), nil
}

func extractText(n *html.Node, sb *strings.Builder, depth int) {
	if depth > 50 {
		return
	}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, depth+1)
	}
}
