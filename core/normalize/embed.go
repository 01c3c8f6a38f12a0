package normalize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	youtubeEmbed = regexp.MustCompile(`youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]+)`)
	youtubeID    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// YouTubeID extracts the video id from an embed snippet. Every iframe (src or
// lazy-loaded data-src) and anchor is checked in document order, so a YouTube
// player after other embeds is still found. Plain text falls back to a scan.
func YouTubeID(embed string) string {
	if strings.TrimSpace(embed) == "" {
		return ""
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(embed)); err == nil {
		var id string
		doc.Find("iframe, a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			for _, attr := range []string{"src", "data-src", "href"} {
				if v, ok := s.Attr(attr); ok {
					if id = idFromLink(v); id != "" {
						return false
					}
				}
			}
			return true
		})
		if id != "" {
			return id
		}
	}

	if m := youtubeEmbed.FindStringSubmatch(embed); m != nil {
		return m[1]
	}
	return ""
}

// idFromLink recognises embed, watch and youtu.be links.
func idFromLink(link string) string {
	link = strings.TrimSpace(link)
	if m := youtubeEmbed.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if strings.HasPrefix(link, "//") {
		link = "https:" + link
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	var id string
	switch strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.") {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		}
	}
	if !youtubeID.MatchString(id) {
		return ""
	}
	return id
}
