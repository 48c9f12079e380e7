package parser

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"akplayer/util"

	"github.com/grafov/m3u8"
)

// ParseMediaPlaylist decodes a single-rendition playlist.
// master playlists and playlists without an EXT-X-KEY
// tag are rejected.
func ParseMediaPlaylist(content []byte) (*m3u8.MediaPlaylist, error) {
	buf := bytes.NewBuffer(content)
	playlist, listType, err := m3u8.DecodeFrom(buf, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrManifestParse, err)
	}
	if listType != m3u8.MEDIA {
		return nil, fmt.Errorf("%w: expected a media playlist", util.ErrManifestParse)
	}
	mediaPlaylist, ok := playlist.(*m3u8.MediaPlaylist)
	if !ok || mediaPlaylist == nil {
		return nil, fmt.Errorf("%w: expected a media playlist", util.ErrManifestParse)
	}
	if len(keysOf(mediaPlaylist)) == 0 {
		return nil, fmt.Errorf("%w: no EXT-X-KEY tag found", util.ErrManifestParse)
	}
	return mediaPlaylist, nil
}

// RewriteKeyURI points every key tag of the playlist at uri.
// the decoder copies the first key onto each segment it
// covers, so the playlist-level key and the segment keys
// all have to change together.
func RewriteKeyURI(playlist *m3u8.MediaPlaylist, uri string) error {
	keys := keysOf(playlist)
	if len(keys) == 0 {
		return fmt.Errorf("%w: no EXT-X-KEY tag found", util.ErrManifestParse)
	}
	for _, key := range keys {
		key.URI = uri
	}
	return nil
}

func keysOf(playlist *m3u8.MediaPlaylist) []*m3u8.Key {
	var keys []*m3u8.Key
	if playlist.Key != nil {
		keys = append(keys, playlist.Key)
	}
	for _, segment := range playlist.Segments {
		if segment != nil && segment.Key != nil {
			keys = append(keys, segment.Key)
		}
	}
	return keys
}

// ResolutionFromQuality turns a label such as "720p" into
// "1280x720". every rendition is assumed to be 16:9.
func ResolutionFromQuality(quality string) (string, error) {
	height, err := heightFromQuality(quality)
	if err != nil {
		return "", err
	}
	width := int64(math.Round(float64(height) * 16 / 9))
	return fmt.Sprintf("%dx%d", width, height), nil
}

func heightFromQuality(quality string) (int64, error) {
	digits := quality
	if end := strings.IndexFunc(quality, func(r rune) bool {
		return !unicode.IsDigit(r)
	}); end >= 0 {
		digits = quality[:end]
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: quality %q has no numeric height", util.ErrInputFormat, quality)
	}
	height, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || height <= 0 {
		return 0, fmt.Errorf("%w: quality %q has no numeric height", util.ErrInputFormat, quality)
	}
	return height, nil
}
