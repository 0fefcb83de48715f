package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// SitemapEntry is one <url> of sitemap.xml.
type SitemapEntry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap writes sitemap.xml for baseURL.
func Sitemap(w io.Writer, baseURL string, modified time.Time, entries []SitemapEntry) error {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	base := strings.TrimRight(baseURL, "/")
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + e.Path,
			LastMod:    modified.UTC().Format(time.RFC3339),
			ChangeFreq: e.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return nil
}

// Robots writes a robots.txt allowing everything and pointing at the sitemap.
func Robots(w io.Writer, baseURL string) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
	return err
}
