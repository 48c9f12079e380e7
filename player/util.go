package player

import (
	"fmt"
	"regexp"
	"strings"

	"akplayer/models"
	"akplayer/util"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

var nextDataPattern = regexp.MustCompile(`(?s)<script[^>]+\bid="__NEXT_DATA__"[^>]*>(.*?)</script>`)

const pagePropsPath = "props.pageProps"

func ParseNextData(body []byte) (*models.BootstrapPayload, error) {
	matches := nextDataPattern.FindSubmatch(body)
	if len(matches) < 2 {
		return nil, fmt.Errorf("%w: __NEXT_DATA__ script not found", util.ErrPayloadExtraction)
	}
	nextData := matches[1]
	if !gjson.ValidBytes(nextData) {
		return nil, fmt.Errorf("%w: __NEXT_DATA__ is not valid json", util.ErrPayloadExtraction)
	}
	props := gjson.GetBytes(nextData, pagePropsPath)
	if !props.IsObject() {
		return nil, fmt.Errorf("%w: %s not found", util.ErrPayloadExtraction, pagePropsPath)
	}

	timestamp, err := scalarField(props, "datetime")
	if err != nil {
		return nil, err
	}
	iv, err := scalarField(props, "ivb6")
	if err != nil {
		return nil, err
	}
	renditions, err := parseRenditions(props.Get("urls"))
	if err != nil {
		return nil, err
	}
	return &models.BootstrapPayload{
		Timestamp:  timestamp,
		IV:         iv,
		Renditions: renditions,
	}, nil
}

func scalarField(props gjson.Result, name string) (string, error) {
	field := props.Get(name)
	switch field.Type {
	case gjson.String:
		if field.String() != "" {
			return field.String(), nil
		}
	case gjson.Number:
		// keep the digits exactly as sent
		return field.Raw, nil
	}
	return "", fmt.Errorf("%w: %s.%s missing or empty", util.ErrPayloadExtraction, pagePropsPath, name)
}

func parseRenditions(urls gjson.Result) ([]*models.RenditionDescriptor, error) {
	if !urls.IsArray() {
		return nil, fmt.Errorf("%w: %s.urls missing or not a list", util.ErrPayloadExtraction, pagePropsPath)
	}
	var renditions []*models.RenditionDescriptor
	if err := sonic.ConfigFastest.Unmarshal([]byte(urls.Raw), &renditions); err != nil {
		return nil, fmt.Errorf("%w: failed to decode urls: %v", util.ErrPayloadExtraction, err)
	}
	if len(renditions) == 0 {
		return nil, fmt.Errorf("%w: %s.urls is empty", util.ErrPayloadExtraction, pagePropsPath)
	}
	for i, rendition := range renditions {
		if rendition == nil || rendition.Quality == "" || rendition.KeyBlob == "" || rendition.ManifestBlob == "" {
			return nil, fmt.Errorf("%w: urls[%d] is incomplete", util.ErrPayloadExtraction, i)
		}
		// quality ends up in file names
		if strings.ContainsAny(rendition.Quality, `/\`) || strings.Contains(rendition.Quality, "..") {
			return nil, fmt.Errorf("%w: urls[%d] has unsafe quality %q", util.ErrPayloadExtraction, i, rendition.Quality)
		}
	}
	return renditions, nil
}
