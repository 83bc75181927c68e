package granicus

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

type implClient struct {
	baseURL  string
	viewID   string
	http     *http.Client
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Client for the portal at baseURL scoped to one view.
func New(baseURL, viewID string, exec executor.Executor, log logger.Logger) Client {
	return &implClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		viewID:   viewID,
		http:     &http.Client{Timeout: 30 * time.Second},
		executor: exec,
		logger:   log,
	}
}

func (c *implClient) ClipURL(clipID int) string {
	return fmt.Sprintf("%s/player/clip/%d?view_id=%s&redirect=true", c.baseURL, clipID, c.viewID)
}

func (c *implClient) AgendaURL(clipID int) string {
	return fmt.Sprintf("%s/AgendaViewer.php?view_id=%s&clip_id=%d", c.baseURL, c.viewID, clipID)
}

func (c *implClient) MinutesURL(clipID int) string {
	return fmt.Sprintf("%s/MinutesViewer.php?view_id=%s&clip_id=%d", c.baseURL, c.viewID, clipID)
}

// Title asks yt-dlp for the clip's published title without downloading media.
func (c *implClient) Title(ctx context.Context, clipID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	out, err := c.executor.Execute(ctx, "yt-dlp",
		"--print", "title",
		"--no-download",
		c.ClipURL(clipID),
	)
	if err != nil {
		return "", fmt.Errorf("resolve title for clip %d: %w", clipID, err)
	}

	title := strings.TrimSpace(out)
	if title == "" {
		return "", fmt.Errorf("empty title for clip %d", clipID)
	}
	return title, nil
}

var clipIDRe = regexp.MustCompile(`clip_id[=:](\d+)`)

func (c *implClient) ScrapeAvailableClips(ctx context.Context) ([]int, error) {
	url := fmt.Sprintf("%s/ViewPublisher.php?view_id=%s", c.baseURL, c.viewID)
	c.logger.Info(ctx, "Scraping clips from %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch view publisher page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("view publisher page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse view publisher page: %w", err)
	}

	ids := ParseClipIDs(doc)
	c.logger.Info(ctx, "Found %d clips via scraping", len(ids))
	if len(ids) > 0 {
		c.logger.Info(ctx, "Range: %d to %d", ids[0], ids[len(ids)-1])
	}
	return ids, nil
}

// ParseClipIDs collects clip IDs referenced by links and inline scripts in a
// Granicus view publisher document.
func ParseClipIDs(doc *goquery.Document) []int {
	seen := make(map[int]bool)

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if m := clipIDRe.FindStringSubmatch(href); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				seen[id] = true
			}
		}
	})

	doc.Find("script").Each(func(_ int, script *goquery.Selection) {
		for _, m := range clipIDRe.FindAllStringSubmatch(script.Text(), -1) {
			if id, err := strconv.Atoi(m[1]); err == nil {
				seen[id] = true
			}
		}
	})

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
