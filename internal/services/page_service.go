package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"resty.dev/v3"
)

// PageScraper fetches a web page and returns its main content as markdown.
type PageScraper interface {
	ScrapeMarkdown(ctx context.Context, pageURL string) (string, error)
}

// maxPageBytes caps how much of a reference page is read into memory.
const maxPageBytes = 5 << 20

// ErrBlockedHost is returned when a reference URL points at a loopback,
// private or link-local address.
var ErrBlockedHost = errors.New("reference host is not publicly routable")

// DirectScraper downloads the page itself and converts the HTML locally.
type DirectScraper struct {
	client       *resty.Client
	allowPrivate bool
}

func NewDirectScraper(timeout time.Duration) *DirectScraper {
	return newDirectScraper(timeout, false)
}

func newDirectScraper(timeout time.Duration, allowPrivate bool) *DirectScraper {
	dialer := &net.Dialer{}
	if !allowPrivate {
		// Checked on the resolved address, so redirects and DNS names are covered too.
		dialer.Control = publicAddressesOnly
	}

	client := resty.NewWithDialer(dialer).
		SetTimeout(timeout).
		SetResponseBodyLimit(maxPageBytes).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-IN,en;q=0.8")

	return &DirectScraper{client: client, allowPrivate: allowPrivate}
}

func (s *DirectScraper) ScrapeMarkdown(ctx context.Context, pageURL string) (string, error) {
	if err := checkReferenceURL(pageURL, s.allowPrivate); err != nil {
		return "", err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch %s: status %d", pageURL, resp.StatusCode())
	}

	// The body reader fails once more than maxPageBytes have been read.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pageURL, err)
	}

	return htmlToMarkdown(string(body))
}

// checkReferenceURL accepts absolute http(s) URLs. Literal IP hosts and
// localhost are rejected early unless private hosts are allowed.
func checkReferenceURL(pageURL string, allowPrivate bool) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("invalid reference URL %q: %w", pageURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported reference URL scheme %q", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("reference URL %q has no host", pageURL)
	}
	if allowPrivate {
		return nil
	}
	if strings.EqualFold(host, "localhost") || strings.HasSuffix(strings.ToLower(host), ".localhost") {
		return fmt.Errorf("%w: %s", ErrBlockedHost, host)
	}
	if ip := net.ParseIP(host); ip != nil && !isPublicIP(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedHost, host)
	}
	return nil
}

func publicAddressesOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || !isPublicIP(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedHost, host)
	}
	return nil
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast())
}

func (s *DirectScraper) Close() error {
	return s.client.Close()
}

// htmlToMarkdown drops page chrome (scripts, navigation, footers), keeps the
// <main> element when there is one and converts the rest to markdown.
func htmlToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("script, style, noscript, iframe, svg, nav, header, footer, form").Remove()

	content := doc.Find("main").First()
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	inner, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)

	if title != "" {
		markdown = "# " + title + "\n\n" + markdown
	}
	return markdown, nil
}

// truncateRunes cuts s to at most max runes without splitting a character.
func truncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
