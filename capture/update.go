package capture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	json "github.com/json-iterator/go"
)

// UpdateOptions configures a metadata update. Caption and Headline are
// pointers so an explicit empty string (clear the field) stays distinct
// from "not provided"; only fields the caller set end up in the request.
type UpdateOptions struct {
	Caption  *string
	Headline *string

	// CommitMessage describes the change in the asset's history.
	CommitMessage string

	// CustomMetadata is attached to the commit as a JSON object.
	CustomMetadata map[string]any
}

// Update patches an asset's metadata and returns the new asset state. The
// remote service appends a commit to the asset's history for every update.
func (c *Client) Update(ctx context.Context, nid string, opts UpdateOptions) (*Asset, error) {
	if nid == "" {
		return nil, newValidationError("nid is required")
	}
	if opts.Headline != nil && utf8.RuneCountInString(*opts.Headline) > maxHeadlineLength {
		return nil, newValidationError("headline must be 25 characters or less")
	}

	c.logger.Debug(ctx, "Updating asset", "nid", nid)

	form := url.Values{}
	if opts.Caption != nil {
		form.Set("caption", *opts.Caption)
	}
	if opts.Headline != nil {
		form.Set("headline", *opts.Headline)
	}
	if opts.CommitMessage != "" {
		form.Set("commit_message", opts.CommitMessage)
	}
	if len(opts.CustomMetadata) > 0 {
		custom, err := json.Marshal(opts.CustomMetadata)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize custom metadata: %w", err)
		}
		form.Set("nit_commit_custom", string(custom))
	}

	body, err := c.do(ctx, apiRequest{
		method:      http.MethodPatch,
		url:         c.assetURL(nid),
		contentType: "application/x-www-form-urlencoded",
		body:        strings.NewReader(form.Encode()),
		nid:         nid,
	})
	if err != nil {
		c.logger.Error(ctx, "Asset update failed", "nid", nid, "error", err)
		return nil, err
	}

	asset, err := decodeAsset(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "Asset updated successfully", "nid", asset.NID)
	return asset, nil
}
