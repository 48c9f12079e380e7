package player

import (
	"fmt"
	"testing"

	"akplayer/util"

	"github.com/pkg/errors"
)

func nextDataPage(pageProps string) []byte {
	return []byte(fmt.Sprintf(
		`<html><head><title>player</title></head><body><div id="__next"></div>`+
			`<script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":%s},"page":"/secure-player"}</script>`+
			`<script src="/_next/static/chunks/main.js"></script></body></html>`,
		pageProps,
	))
}

func TestParseNextData(t *testing.T) {
	body := nextDataPage(`{
		"datetime": "20240101120007",
		"ivb6": "MDEyMzQ1Njc4OWFiY2RlZg==",
		"urls": [
			{"quality": "360p", "kstr": "a2V5MzYw", "jstr": "bWFuMzYw"},
			{"quality": "720p", "kstr": "a2V5NzIw", "jstr": "bWFuNzIw"}
		]
	}`)
	payload, err := ParseNextData(body)
	if err != nil {
		t.Fatalf("ParseNextData: %v", err)
	}
	if payload.Timestamp != "20240101120007" {
		t.Errorf("Timestamp = %q", payload.Timestamp)
	}
	if payload.IV != "MDEyMzQ1Njc4OWFiY2RlZg==" {
		t.Errorf("IV = %q", payload.IV)
	}
	if len(payload.Renditions) != 2 {
		t.Fatalf("got %d renditions, want 2", len(payload.Renditions))
	}
	if payload.Renditions[0].Quality != "360p" || payload.Renditions[1].Quality != "720p" {
		t.Errorf("renditions out of order: %q, %q", payload.Renditions[0].Quality, payload.Renditions[1].Quality)
	}
	if payload.Renditions[1].KeyBlob != "a2V5NzIw" || payload.Renditions[1].ManifestBlob != "bWFuNzIw" {
		t.Errorf("unexpected blobs %+v", payload.Renditions[1])
	}
}

func TestParseNextDataNumericTimestamp(t *testing.T) {
	body := nextDataPage(`{"datetime": 20240101120007, "ivb6": "aXY=", "urls": [{"quality": "720p", "kstr": "k", "jstr": "j"}]}`)
	payload, err := ParseNextData(body)
	if err != nil {
		t.Fatalf("ParseNextData: %v", err)
	}
	if payload.Timestamp != "20240101120007" {
		t.Errorf("Timestamp = %q", payload.Timestamp)
	}
}

func TestParseNextDataErrors(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"no script", []byte("<html><body>maintenance</body></html>")},
		{"invalid json", []byte(`<script id="__NEXT_DATA__" type="application/json">{"props":</script>`)},
		{"no page props", []byte(`<script id="__NEXT_DATA__" type="application/json">{"props":{}}</script>`)},
		{"missing urls", nextDataPage(`{"datetime": "20240101120007", "ivb6": "aXY="}`)},
		{"urls not a list", nextDataPage(`{"datetime": "20240101120007", "ivb6": "aXY=", "urls": "none"}`)},
		{"empty urls", nextDataPage(`{"datetime": "20240101120007", "ivb6": "aXY=", "urls": []}`)},
		{"missing datetime", nextDataPage(`{"ivb6": "aXY=", "urls": [{"quality": "720p", "kstr": "k", "jstr": "j"}]}`)},
		{"missing iv", nextDataPage(`{"datetime": "20240101120007", "urls": [{"quality": "720p", "kstr": "k", "jstr": "j"}]}`)},
		{"incomplete rendition", nextDataPage(`{"datetime": "20240101120007", "ivb6": "aXY=", "urls": [{"quality": "720p", "kstr": "k"}]}`)},
		{"unsafe quality", nextDataPage(`{"datetime": "20240101120007", "ivb6": "aXY=", "urls": [{"quality": "../720p", "kstr": "k", "jstr": "j"}]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNextData(tt.body)
			if !errors.Is(err, util.ErrPayloadExtraction) {
				t.Fatalf("got %v, want ErrPayloadExtraction", err)
			}
		})
	}
}
