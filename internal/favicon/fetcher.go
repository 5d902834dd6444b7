package favicon

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// maxIconBytes caps a downloaded icon file.
const maxIconBytes = 1 << 20

// Result holds the fetch outcome for a single link.
type Result struct {
	Link *model.Link
	Path string // cached icon file, "" on failure
	Err  string // error message, "" on success
}

// ProgressFunc is called after each link is processed.
// completed is the number of links processed so far, total is the total count.
type ProgressFunc func(completed, total int)

// FetchAll downloads favicons for all links concurrently, caching them
// in iconsDir. Links that already have a cached icon on disk are
// skipped. Results can be applied to the store afterwards on the
// owning goroutine.
func FetchAll(links []*model.Link, iconsDir string, concurrency int, timeout time.Duration, onProgress ProgressFunc) []Result {
	if len(links) == 0 {
		return nil
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	results := make([]Result, len(links))
	jobs := make(chan int, len(links))
	var wg sync.WaitGroup

	// Progress tracking
	var progressMu sync.Mutex
	completed := 0

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow redirects but limit to 10
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	// Start workers
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = fetchOne(client, links[idx], iconsDir)

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(links))
					progressMu.Unlock()
				}
			}
		}()
	}

	// Send jobs
	for i := range links {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// fetchOne resolves and downloads the icon for a single link.
func fetchOne(client *http.Client, link *model.Link, iconsDir string) Result {
	result := Result{Link: link}

	if link.FaviconPath != "" {
		if _, err := os.Stat(link.FaviconPath); err == nil {
			result.Path = link.FaviconPath
			return result
		}
	}

	pageURL, err := url.Parse(link.URL)
	if err != nil || pageURL.Host == "" {
		result.Err = "invalid URL"
		return result
	}

	iconURL := scrapeIconURL(client, pageURL)
	if iconURL == "" {
		// Conventional location
		iconURL = pageURL.Scheme + "://" + pageURL.Host + "/favicon.ico"
	}

	path, err := download(client, iconURL, iconsDir, pageURL.Host)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Path = path
	return result
}

// scrapeIconURL fetches the page and looks for a <link rel="icon">
// (or "shortcut icon") href, resolved against the page URL.
// Returns "" when the page can't be read or declares no icon.
func scrapeIconURL(client *http.Client, pageURL *url.URL) string {
	resp, err := client.Get(pageURL.String())
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return ""
	}

	var href string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if href != "" {
			return
		}
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "link") {
			if isIconRel(getAttr(n, "rel")) {
				href = getAttr(n, "href")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if href == "" {
		return ""
	}
	resolved, err := pageURL.Parse(href)
	if err != nil {
		return ""
	}
	return resolved.String()
}

// isIconRel matches rel values like "icon", "shortcut icon" and
// "apple-touch-icon".
func isIconRel(rel string) bool {
	for _, part := range strings.Fields(strings.ToLower(rel)) {
		if part == "icon" || part == "apple-touch-icon" {
			return true
		}
	}
	return false
}

// download saves the icon body to iconsDir, one file per host.
func download(client *http.Client, iconURL, iconsDir, host string) (string, error) {
	resp, err := client.Get(iconURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("icon fetch: %s", http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("icon fetch: empty response")
	}

	path := filepath.Join(iconsDir, IconFileName(host))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// IconFileName maps a host to its cache file name.
func IconFileName(host string) string {
	host = strings.ToLower(host)
	host = strings.ReplaceAll(host, ":", "_")
	return host + ".ico"
}

func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
