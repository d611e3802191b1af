package service

import (
	"strconv"
	"strings"
	"time"
)

// Image is what a card shows: a real picture or the placeholder icon.
type Image struct {
	Src         string
	Placeholder bool
}

// ImageSource appends a cache-busting timestamp to a stored image URL.
// A blank URL yields the placeholder so a card never points at a missing file.
func ImageSource(url string, now time.Time) Image {
	url = strings.TrimSpace(url)
	if url == "" {
		return Image{Placeholder: true}
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return Image{Src: url + sep + "t=" + strconv.FormatInt(now.UnixMilli(), 10)}
}
