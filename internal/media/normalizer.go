// Package media classifies listing media URLs and rewrites Google Drive
// sharing links into URLs that image and video elements can load directly.
package media

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Lutefd/estate-site/internal/model"
)

const (
	drivePreviewURL   = "https://drive.google.com/file/d/%s/preview"
	driveThumbnailURL = "https://drive.google.com/thumbnail?id=%s&sz=w1000"
)

var (
	videoExtension = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov|avi)$`)
	driveFileView  = regexp.MustCompile(`(?i)drive\.google\.com/file/d/[\w-]+/(view|preview)`)

	// Order matters: the first pattern that yields an id wins.
	driveIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`drive\.google\.com/open\?(?:[^#]*&)?id=([\w-]+)`),
		regexp.MustCompile(`drive\.google\.com/file/d/([\w-]+)`),
		regexp.MustCompile(`drive\.google\.com/(?:uc|thumbnail)\?(?:[^#]*&)?id=([\w-]+)`),
	}
)

// IsVideo reports whether url's path ends in a video extension or url is a
// Drive file view link. The query and fragment are ignored.
func IsVideo(url string) bool {
	return videoExtension.MatchString(urlPath(url)) || driveFileView.MatchString(url)
}

func urlPath(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}

func isDrive(url string) bool {
	return strings.Contains(strings.ToLower(url), "drive.google.com")
}

// ExtractFileID returns the Drive file id embedded in url, or "" when url is
// not a recognised Drive link.
func ExtractFileID(url string) string {
	for _, pattern := range driveIDPatterns {
		if m := pattern.FindStringSubmatch(url); len(m) == 2 {
			return m[1]
		}
	}
	return ""
}

// ToDirectURL rewrites Drive links to an embeddable preview (video) or
// thumbnail (image) URL. Anything else is returned unchanged.
func ToDirectURL(url string) string {
	if !isDrive(url) {
		return url
	}
	id := ExtractFileID(url)
	if id == "" {
		return url
	}
	if IsVideo(url) {
		return fmt.Sprintf(drivePreviewURL, id)
	}
	return fmt.Sprintf(driveThumbnailURL, id)
}

// ParseList splits a spreadsheet media cell. Cells separate URLs with commas
// and frequently carry stray newlines.
func ParseList(field string) []string {
	parts := strings.Split(field, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func Classify(url string) model.MediaItem {
	url = strings.TrimSpace(url)
	item := model.MediaItem{
		URL:       url,
		DirectURL: ToDirectURL(url),
		Kind:      model.MediaImage,
	}

	video := IsVideo(url)
	if isDrive(url) {
		item.FileID = ExtractFileID(url)
	}
	switch {
	case item.FileID != "" && video:
		item.Kind = model.MediaDriveVideo
	case item.FileID != "":
		item.Kind = model.MediaDriveImage
	case video:
		item.Kind = model.MediaVideo
	}
	return item
}

func ClassifyList(field string) []model.MediaItem {
	urls := ParseList(field)
	items := make([]model.MediaItem, 0, len(urls))
	for _, url := range urls {
		items = append(items, Classify(url))
	}
	return items
}
