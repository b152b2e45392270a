package capture

// Asset is a registered asset as reported by the main API. Updates return
// a new value; the SDK never mutates or deletes an asset.
type Asset struct {
	// NID is the Numbers ID, the opaque content-addressed identifier
	// assigned at registration.
	NID      string
	Filename string
	MimeType string
	Caption  string
	Headline string
}

// Commit is one immutable entry in an asset's history. Commits are
// produced by the history service and are read-only to the client.
type Commit struct {
	AssetTreeCID string
	TxHash       string
	Author       string
	Committer    string
	// Timestamp is the commit's unix time in seconds.
	Timestamp int64
	Action    string
}

// License carries an asset's license information. A wire license may be a
// plain string (treated as the name) or a {name, document} object.
type License struct {
	Name string
	// Document is a URL to the license text.
	Document string
}

// AssetTree is the reconciled provenance record for an asset, merged from
// all of its commits. Known fields are promoted to named attributes; every
// other field the merge service returns is preserved verbatim in Extra,
// keyed by its original wire name, so no data is lost in translation.
type AssetTree struct {
	AssetCID      string
	AssetSHA256   string
	CreatorName   string
	CreatorWallet string
	// CreatedAt is epoch milliseconds.
	CreatedAt       int64
	LocationCreated string
	Caption         string
	Headline        string
	License         *License
	MimeType        string
	// NftRecord is the CID of the NFT record when the asset has been minted.
	NftRecord         string
	UsedBy            string
	IntegrityCID      string
	DigitalSourceType string
	MiningPreference  string
	GeneratedBy       string

	// Extra holds every merge-service field outside the known set. A field
	// never appears both here and as a named attribute.
	Extra map[string]any
}

// SimilarMatch is one near-duplicate hit from the verify engine.
type SimilarMatch struct {
	NID string `json:"nid"`
	// Distance is the similarity score; lower means more similar.
	Distance float64 `json:"distance"`
}

// AssetSearchResult is the verify engine's answer to a similarity search.
// An empty SimilarMatches list is a valid result, not a failure.
type AssetSearchResult struct {
	// PreciseMatch is the NID of the exact match, empty when none.
	PreciseMatch      string         `json:"precise_match"`
	InputFileMimeType string         `json:"input_file_mime_type"`
	SimilarMatches    []SimilarMatch `json:"similar_matches"`
	// OrderID identifies the search transaction on the verify engine.
	OrderID string `json:"order_id"`
}

// NftRecord is one NFT linkage reported by the verify engine.
type NftRecord struct {
	TokenID  string `json:"token_id"`
	Contract string `json:"contract"`
	Network  string `json:"network"`
	Owner    string `json:"owner"`
}

// NftSearchResult is the verify engine's answer to an NFT lookup.
type NftSearchResult struct {
	Records []NftRecord `json:"records"`
	OrderID string      `json:"order_id"`
}
