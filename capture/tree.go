package capture

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	json "github.com/json-iterator/go"
)

// mergeCommit is one entry of the merge service's request body.
type mergeCommit struct {
	AssetTreeCid     string `json:"assetTreeCid"`
	TimestampCreated int64  `json:"timestampCreated"`
}

// GetAssetTree fetches the asset's commit history and asks the merge
// service to reconcile it into a single asset tree. An asset with no
// commits yields a NoCommits error, distinct from NotFound: the asset may
// exist while its history is still empty or unindexed.
func (c *Client) GetAssetTree(ctx context.Context, nid string) (*AssetTree, error) {
	if nid == "" {
		return nil, newValidationError("nid is required")
	}

	commits, err := c.GetHistory(ctx, nid)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, newNoCommitsError(nid)
	}

	payload := make([]mergeCommit, 0, len(commits))
	for _, commit := range commits {
		payload = append(payload, mergeCommit{
			AssetTreeCid:     commit.AssetTreeCID,
			TimestampCreated: commit.Timestamp,
		})
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merge request: %w", err)
	}

	c.logger.Debug(ctx, "Merging asset trees", "nid", nid, "commits", len(commits))

	body, err := c.do(ctx, apiRequest{
		method:         http.MethodPost,
		url:            c.mergeURL,
		contentType:    "application/json",
		body:           bytes.NewReader(requestBody),
		nid:            nid,
		failureMessage: "Failed to merge asset trees",
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode merge response: %w", err)
	}

	tree := assetTreeFromMap(unwrapMergedTree(raw))

	c.logger.Info(ctx, "Asset tree merged successfully", "nid", nid, "assetCid", tree.AssetCID)
	return tree, nil
}
