package capture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	json "github.com/json-iterator/go"
)

// apiAsset is the main API's wire form of an asset.
type apiAsset struct {
	ID                string `json:"id"`
	AssetFileName     string `json:"asset_file_name"`
	AssetFileMimeType string `json:"asset_file_mime_type"`
	Caption           string `json:"caption"`
	Headline          string `json:"headline"`
}

func (a apiAsset) toAsset() *Asset {
	return &Asset{
		NID:      a.ID,
		Filename: a.AssetFileName,
		MimeType: a.AssetFileMimeType,
		Caption:  a.Caption,
		Headline: a.Headline,
	}
}

// decodeAsset maps a main-API asset response body to an Asset.
func decodeAsset(body []byte) (*Asset, error) {
	var wire apiAsset
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode asset response: %w", err)
	}
	return wire.toAsset(), nil
}

// assetURL builds the main API URL for one asset.
func (c *Client) assetURL(nid string) string {
	return c.baseURL + "/assets/" + url.PathEscape(nid) + "/"
}

// Get retrieves a single asset by NID.
func (c *Client) Get(ctx context.Context, nid string) (*Asset, error) {
	if nid == "" {
		return nil, newValidationError("nid is required")
	}

	c.logger.Debug(ctx, "Fetching asset", "nid", nid)

	body, err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		url:    c.assetURL(nid),
		nid:    nid,
	})
	if err != nil {
		return nil, err
	}

	return decodeAsset(body)
}
