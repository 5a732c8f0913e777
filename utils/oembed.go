package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// FetchVideoTitle looks up a video's title via the YouTube oEmbed
// endpoint. Used to backfill a title when an admin saves a video
// without one; callers treat failures as non-fatal.
func FetchVideoTitle(videoURL string) (string, error) {
	client := resty.New().SetTimeout(5 * time.Second)

	var out oembedResponse
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"url":    videoURL,
			"format": "json",
		}).
		SetResult(&out).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("oembed lookup failed, code: %d", resp.StatusCode())
	}

	return out.Title, nil
}
