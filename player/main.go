package player

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"akplayer/models"
	"akplayer/util"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const playerTokenPath = "data.video_player_token"

// GetPlayerToken exchanges the session token for the
// short-lived token accepted by the secure player.
func GetPlayerToken(
	ctx context.Context,
	client models.HTTPClient,
	cfg *models.EnvConfig,
	session *models.Session,
) (string, error) {
	params := url.Values{}
	params.Set("course_id", strconv.FormatInt(session.CourseID, 10))
	params.Set("video_id", strconv.FormatInt(session.VideoID, 10))
	params.Set("ytflag", "0")
	params.Set("folder_wise_course", "0")

	headers := map[string]string{
		"auth-key":      cfg.AuthKey,
		"authorization": session.Token,
	}
	body, status, err := fetch(ctx, client, cfg, cfg.AuthEndpoint, params, headers)
	if err != nil {
		return "", err
	}
	zap.S().Infof("video details responded with status %d", status)

	if status != http.StatusOK {
		return "", fmt.Errorf("%w: video details returned status %d", util.ErrAuth, status)
	}
	token := gjson.GetBytes(body, playerTokenPath)
	if token.Type != gjson.String || token.String() == "" {
		return "", fmt.Errorf("%w: %s missing from response", util.ErrAuth, playerTokenPath)
	}
	return token.String(), nil
}

// GetBootstrapPayload loads the secure player page and
// extracts the encrypted rendition set embedded in it.
func GetBootstrapPayload(
	ctx context.Context,
	client models.HTTPClient,
	cfg *models.EnvConfig,
	playerToken string,
) (*models.BootstrapPayload, error) {
	params := url.Values{}
	params.Set("token", playerToken)

	body, status, err := fetch(ctx, client, cfg, cfg.PlayerEndpoint, params, nil)
	if err != nil {
		return nil, err
	}
	zap.S().Infof("secure player responded with status %d", status)

	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: secure player returned status %d", util.ErrPayloadExtraction, status)
	}
	return ParseNextData(body)
}

func fetch(
	ctx context.Context,
	client models.HTTPClient,
	cfg *models.EnvConfig,
	endpoint string,
	params url.Values,
	headers map[string]string,
) ([]byte, int, error) {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" && cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	zap.S().Debugf("GET %s", endpoint)

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", util.ErrNetwork, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: failed to read response body: %v", util.ErrNetwork, err)
	}
	return body, resp.StatusCode, nil
}
