package core

import (
	"fmt"

	"akplayer/models"
	"akplayer/util/parser"

	"github.com/grafov/m3u8"
)

// bandwidth is not published by the player, every
// variant is advertised with a placeholder
const placeholderBandwidth = 0

func BuildMaster(renditions []*models.Rendition) (*m3u8.MasterPlaylist, error) {
	master := m3u8.NewMasterPlaylist()
	for _, rendition := range renditions {
		resolution, err := parser.ResolutionFromQuality(rendition.Quality)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rendition.Quality, err)
		}
		master.Append(
			rendition.ManifestFile,
			rendition.Manifest,
			m3u8.VariantParams{
				Bandwidth:  placeholderBandwidth,
				Resolution: resolution,
			},
		)
	}
	return master, nil
}
