package core

import (
	"context"
	"fmt"

	"akplayer/models"
	"akplayer/player"
	"akplayer/util"

	"go.uber.org/zap"
)

// Run fetches the bootstrap payload for the session and
// unlocks it into cfg.OutputDir. it returns the master
// playlist file name.
func Run(
	ctx context.Context,
	client models.HTTPClient,
	cfg *models.EnvConfig,
	session *models.Session,
) (string, error) {
	playerToken, err := player.GetPlayerToken(ctx, client, cfg, session)
	if err != nil {
		return "", fmt.Errorf("bootstrap: %w", err)
	}
	payload, err := player.GetBootstrapPayload(ctx, client, cfg, playerToken)
	if err != nil {
		return "", fmt.Errorf("bootstrap: %w", err)
	}
	zap.S().Infof("found %d renditions", len(payload.Renditions))

	return Unlock(payload, playerToken, session, cfg.OutputDir)
}

// Unlock decrypts every rendition of payload and writes the key files,
// media playlists and master playlist into dir. all renditions are
// decrypted before the first file is written, so a failure leaves
// no output behind.
func Unlock(
	payload *models.BootstrapPayload,
	playerToken string,
	session *models.Session,
	dir string,
) (string, error) {
	key, err := NewDecryptionKey(payload, playerToken)
	if err != nil {
		return "", fmt.Errorf("derive: %w", err)
	}
	zap.S().Debugf("derived %s key", key.Method)

	renditions := make([]*models.Rendition, 0, len(payload.Renditions))
	for _, desc := range payload.Renditions {
		rendition, err := DecryptRendition(desc, key, session)
		if err != nil {
			return "", fmt.Errorf("decrypt %s: %w", desc.Quality, err)
		}
		renditions = append(renditions, rendition)
	}

	master, err := BuildMaster(renditions)
	if err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}

	for _, rendition := range renditions {
		if err := PersistRendition(dir, rendition); err != nil {
			return "", fmt.Errorf("persist %s: %w", rendition.Quality, err)
		}
		zap.S().Infof("saved %s", rendition.ManifestFile)
	}

	masterFile := session.MasterFileName()
	if _, err := util.WriteFileAtomic(dir, masterFile, master.Encode().Bytes()); err != nil {
		return "", fmt.Errorf("persist master: %w", err)
	}
	return masterFile, nil
}
