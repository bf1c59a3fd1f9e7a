package askweb

import (
	"log/slog"
	"net/url"
	"strings"
)

// LinkScope restricts a crawl to a section of a single site. A discovered
// URL is in scope when its hostname equals Domain and its full string has
// BaseURL as a prefix. Both checks are required: hostname equality alone
// would let a crawl scoped to a subsection escape into the rest of the
// domain.
type LinkScope struct {
	BaseURL string
	Domain  string
	Logger  *slog.Logger
}

// Filter resolves raw anchor hrefs against the page URL and returns the
// in-scope absolute URLs, deduplicated in discovery order.
//
// Hrefs that are empty, exactly "/" or fragment-only are dropped before
// resolution. A malformed href is skipped with a warning rather than
// failing the crawl.
func (s LinkScope) Filter(pageURL string, hrefs []string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		s.logger().Warn("skipping links of unparseable page URL", "url", pageURL, "err", err)
		return nil
	}

	seen := make(map[string]struct{})
	var links []string

	for _, href := range hrefs {
		if href == "" || href == "/" || strings.HasPrefix(href, "#") {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			s.logger().Warn("skipping malformed link", "href", href, "err", err)
			continue
		}

		resolved := base.ResolveReference(ref)
		if resolved.Hostname() != s.Domain {
			continue
		}
		link := resolved.String()
		if !strings.HasPrefix(link, s.BaseURL) {
			continue
		}

		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}

	return links
}

func (s LinkScope) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
