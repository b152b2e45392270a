package capture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	json "github.com/json-iterator/go"
)

// apiCommit is the history service's wire form of a commit.
type apiCommit struct {
	AssetTreeCid     string `json:"assetTreeCid"`
	TxHash           string `json:"txHash"`
	Author           string `json:"author"`
	Committer        string `json:"committer"`
	TimestampCreated int64  `json:"timestampCreated"`
	Action           string `json:"action"`
}

// GetHistory retrieves the asset's commit log from the history service.
// Commits come back in the service's chronological order; the client never
// re-sorts them.
func (c *Client) GetHistory(ctx context.Context, nid string) ([]Commit, error) {
	if nid == "" {
		return nil, newValidationError("nid is required")
	}

	params := url.Values{}
	params.Set("nid", nid)
	if c.testnet {
		params.Set("testnet", "true")
	}

	c.logger.Debug(ctx, "Fetching asset history", "nid", nid, "testnet", c.testnet)

	body, err := c.do(ctx, apiRequest{
		method:         http.MethodGet,
		url:            c.historyURL + "?" + params.Encode(),
		nid:            nid,
		failureMessage: "Failed to fetch asset history",
	})
	if err != nil {
		return nil, err
	}

	var wire struct {
		Commits []apiCommit `json:"commits"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode history response: %w", err)
	}

	commits := make([]Commit, 0, len(wire.Commits))
	for _, wc := range wire.Commits {
		commits = append(commits, Commit{
			AssetTreeCID: wc.AssetTreeCid,
			TxHash:       wc.TxHash,
			Author:       wc.Author,
			Committer:    wc.Committer,
			Timestamp:    wc.TimestampCreated,
			Action:       wc.Action,
		})
	}

	c.logger.Debug(ctx, "Asset history fetched", "nid", nid, "commits", len(commits))
	return commits, nil
}
