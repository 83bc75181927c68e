package granicus

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

func TestParseClipIDs(t *testing.T) {
	html := `<html><body>
		<a href="/MediaPlayer.php?view_id=14&clip_id=6700">Meeting one</a>
		<a href="/MediaPlayer.php?view_id=14&clip_id=6702">Meeting two</a>
		<a href="/MediaPlayer.php?view_id=14&clip_id=6700">Duplicate link</a>
		<a href="/AgendaViewer.php?view_id=14">No clip here</a>
		<script>
			var clips = [{clip_id:6701}, {clip_id:6703}];
		</script>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	ids := ParseClipIDs(doc)
	want := []int{6700, 6701, 6702, 6703}
	if len(ids) != len(want) {
		t.Fatalf("ParseClipIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ParseClipIDs()[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestParseClipIDsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>nothing</body></html>"))
	if err != nil {
		t.Fatal(err)
	}

	if ids := ParseClipIDs(doc); len(ids) != 0 {
		t.Errorf("ParseClipIDs() = %v, want empty", ids)
	}
}

func TestClientURLs(t *testing.T) {
	c := New("https://lfucg.granicus.com", "14", executor.New(), logger.New(logger.Options{Level: "error"}))

	if got := c.ClipURL(6700); got != "https://lfucg.granicus.com/player/clip/6700?view_id=14&redirect=true" {
		t.Errorf("ClipURL() = %v", got)
	}
	if got := c.AgendaURL(6700); got != "https://lfucg.granicus.com/AgendaViewer.php?view_id=14&clip_id=6700" {
		t.Errorf("AgendaURL() = %v", got)
	}
	if got := c.MinutesURL(6700); got != "https://lfucg.granicus.com/MinutesViewer.php?view_id=14&clip_id=6700" {
		t.Errorf("MinutesURL() = %v", got)
	}
}
