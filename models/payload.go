package models

import "github.com/grafov/m3u8"

// BootstrapPayload is what the secure player page
// hands to the browser before playback starts.
type BootstrapPayload struct {
	Timestamp  string
	IV         string // base64
	Renditions []*RenditionDescriptor
}

type RenditionDescriptor struct {
	Quality      string `json:"quality"`
	KeyBlob      string `json:"kstr"` // base64 ciphertext of the base64 key
	ManifestBlob string `json:"jstr"` // base64 ciphertext of the media playlist
}

type Rendition struct {
	Quality      string
	KeyFile      string
	ManifestFile string
	Key          []byte
	Manifest     *m3u8.MediaPlaylist
}
