package capture

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	json "github.com/json-iterator/go"
)

// AssetSearchOptions selects the verify engine's search input: exactly one
// of FileURL, File, or NID. Threshold and SampleCount tune the search when
// set.
type AssetSearchOptions struct {
	// FileURL points at a remotely hosted file to search by.
	FileURL string

	// File uploads a local file to search by. Byte-buffer inputs require
	// Filename.
	File *FileInput

	// Filename names a byte-buffer File input.
	Filename string

	// NID searches by an already registered asset.
	NID string

	// Threshold is the similarity cutoff within [0, 1]; lower means more
	// similar.
	Threshold *float64

	// SampleCount caps the number of similar matches returned; must be
	// positive.
	SampleCount *int
}

// SearchAsset queries the verify engine for exact and near-duplicate
// matches of the given input. An empty similar-match list is a valid
// outcome, not an error.
func (c *Client) SearchAsset(ctx context.Context, opts AssetSearchOptions) (*AssetSearchResult, error) {
	if opts.FileURL == "" && opts.File == nil && opts.NID == "" {
		return nil, newValidationError("Must provide file_url, file, or nid for asset search")
	}
	if opts.Threshold != nil && (*opts.Threshold < 0 || *opts.Threshold > 1) {
		return nil, newValidationError("threshold must be between 0 and 1")
	}
	if opts.SampleCount != nil && *opts.SampleCount < 1 {
		return nil, newValidationError("sample_count must be a positive integer")
	}

	c.logger.Debug(ctx, "Searching for asset",
		"byFile", opts.File != nil,
		"byFileURL", opts.FileURL != "",
		"byNid", opts.NID != "",
	)

	var body []byte
	var err error
	if opts.File != nil {
		body, err = c.searchByFile(ctx, opts)
	} else {
		body, err = c.searchByCriteria(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	var result AssetSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	c.logger.Debug(ctx, "Asset search completed",
		"preciseMatch", result.PreciseMatch,
		"similarMatches", len(result.SimilarMatches),
	)
	return &result, nil
}

// searchByCriteria submits URL or NID criteria as a JSON body.
func (c *Client) searchByCriteria(ctx context.Context, opts AssetSearchOptions) ([]byte, error) {
	criteria := struct {
		FileURL     string   `json:"file_url,omitempty"`
		Nid         string   `json:"nid,omitempty"`
		Threshold   *float64 `json:"threshold,omitempty"`
		SampleCount *int     `json:"sample_count,omitempty"`
	}{
		FileURL:     opts.FileURL,
		Nid:         opts.NID,
		Threshold:   opts.Threshold,
		SampleCount: opts.SampleCount,
	}

	requestBody, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize search request: %w", err)
	}

	return c.do(ctx, apiRequest{
		method:      http.MethodPost,
		url:         c.searchURL,
		contentType: "application/json",
		body:        bytes.NewReader(requestBody),
		nid:         opts.NID,
	})
}

// searchByFile normalizes the file input and submits it as a multipart
// upload alongside the tuning fields.
func (c *Client) searchByFile(ctx context.Context, opts AssetSearchOptions) ([]byte, error) {
	data, filename, mimeType, err := opts.File.normalize(opts.Filename)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if opts.Threshold != nil {
		if err := form.WriteField("threshold", strconv.FormatFloat(*opts.Threshold, 'f', -1, 64)); err != nil {
			return nil, fmt.Errorf("failed to build search form: %w", err)
		}
	}
	if opts.SampleCount != nil {
		if err := form.WriteField("sample_count", strconv.Itoa(*opts.SampleCount)); err != nil {
			return nil, fmt.Errorf("failed to build search form: %w", err)
		}
	}
	if err := writeFilePart(form, "file", filename, mimeType, data); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize search form: %w", err)
	}

	return c.do(ctx, apiRequest{
		method:      http.MethodPost,
		url:         c.searchURL,
		contentType: form.FormDataContentType(),
		body:        &buf,
	})
}
