package vqa

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// MediaMode selects how local media paths are sent to the model endpoint.
type MediaMode string

const (
	// MediaFileURL sends local paths as absolute file:// URLs; the serving endpoint reads them.
	MediaFileURL MediaMode = "file_url"
	// MediaInline embeds local file contents as base64 data: URLs.
	MediaInline MediaMode = "inline"
)

// fallbackMediaTypes covers extensions missing from minimal mime tables.
var fallbackMediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MediaURL converts a work item's media reference into a URL for the chat request.
// Remote, file and data URLs pass through unchanged.
func MediaURL(media string, mode MediaMode) (string, error) {
	media = strings.TrimSpace(media)
	if media == "" {
		return "", fmt.Errorf("media path is empty")
	}
	if hasURLScheme(media) {
		return media, nil
	}
	abs, err := filepath.Abs(media)
	if err != nil {
		return "", fmt.Errorf("resolve media path: %w", err)
	}
	if mode != MediaInline {
		return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read media: %w", err)
	}
	return "data:" + mediaType(abs) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func hasURLScheme(media string) bool {
	lower := strings.ToLower(media)
	for _, prefix := range []string{"http://", "https://", "file://", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func mediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if typ, ok := fallbackMediaTypes[ext]; ok {
		return typ
	}
	if typ := mime.TypeByExtension(ext); typ != "" {
		return typ
	}
	return "application/octet-stream"
}
