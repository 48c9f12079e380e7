package core

import (
	"encoding/base64"
	"fmt"
	"strings"

	"akplayer/models"
	"akplayer/player"
	"akplayer/util"
	"akplayer/util/parser"

	"go.uber.org/zap"
)

// NewDecryptionKey derives the session key once; it is
// shared read-only by every rendition of the payload.
func NewDecryptionKey(
	payload *models.BootstrapPayload,
	playerToken string,
) (*models.DecryptionKey, error) {
	key, err := player.DeriveKey(payload.Timestamp, playerToken)
	if err != nil {
		return nil, err
	}
	iv, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload.IV))
	if err != nil {
		return nil, fmt.Errorf("%w: ivb6 is not valid base64: %v", util.ErrPayloadExtraction, err)
	}
	if !util.IsValidIV(iv) {
		return nil, fmt.Errorf("%w: invalid IV: expected 16 bytes, got %d", util.ErrPayloadExtraction, len(iv))
	}
	return &models.DecryptionKey{
		Key:    key,
		IV:     iv,
		Method: util.AESMethod(key),
	}, nil
}

// DecryptRendition unwraps the key and the media playlist of a
// single rendition and points the playlist at the local key file.
// nothing is written to disk here.
func DecryptRendition(
	desc *models.RenditionDescriptor,
	key *models.DecryptionKey,
	session *models.Session,
) (*models.Rendition, error) {
	// the key travels base64 encoded inside the envelope
	wrappedKey, err := decryptBlob(desc.KeyBlob, key)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	rawKey, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(wrappedKey)))
	if err != nil {
		return nil, fmt.Errorf("key: %w: decrypted key is not valid base64", util.ErrDecryption)
	}

	content, err := decryptBlob(desc.ManifestBlob, key)
	if err != nil {
		return nil, fmt.Errorf("playlist: %w", err)
	}
	playlist, err := parser.ParseMediaPlaylist(content)
	if err != nil {
		return nil, fmt.Errorf("playlist: %w", err)
	}

	keyFile := session.KeyFileName(desc.Quality)
	if err := parser.RewriteKeyURI(playlist, keyFile); err != nil {
		return nil, fmt.Errorf("playlist: %w", err)
	}
	zap.S().Debugf("decrypted %s rendition (%d byte key)", desc.Quality, len(rawKey))

	return &models.Rendition{
		Quality:      desc.Quality,
		KeyFile:      keyFile,
		ManifestFile: session.ManifestFileName(desc.Quality),
		Key:          rawKey,
		Manifest:     playlist,
	}, nil
}

// PersistRendition writes the plaintext key and the
// rewritten media playlist into dir.
func PersistRendition(dir string, rendition *models.Rendition) error {
	if _, err := util.WriteFileAtomic(dir, rendition.KeyFile, rendition.Key); err != nil {
		return err
	}
	content := rendition.Manifest.Encode().Bytes()
	if _, err := util.WriteFileAtomic(dir, rendition.ManifestFile, content); err != nil {
		return err
	}
	return nil
}

func decryptBlob(blob string, key *models.DecryptionKey) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not valid base64", util.ErrDecryption)
	}
	return util.DecryptCBC(ciphertext, key.Key, key.IV)
}
