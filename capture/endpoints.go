package capture

// DefaultBaseURL is the production main API. A Config.BaseURL override
// takes precedence; the testnet flag does not change the base URL, it only
// gates the history service's testnet query flag.
const DefaultBaseURL = "https://api.numbersprotocol.io/api/v3"

// History and provenance merging are handled by independent backend
// services with fixed URLs, separate from the main API. The client is the
// only place that stitches them together.
const (
	// historyAPIURL returns an asset's commit log.
	historyAPIURL = "https://e23hi68y55.execute-api.us-east-1.amazonaws.com/default/get-commits-storage-backend-jade-near"

	// mergeTreeAPIURL reconciles a list of commits into one asset tree.
	mergeTreeAPIURL = "https://us-central1-numbers-protocol-api.cloudfunctions.net/get-full-asset-tree"

	// assetSearchAPIURL is the verify engine's similarity search.
	assetSearchAPIURL = "https://us-central1-numbers-protocol-api.cloudfunctions.net/asset-search"
)

// VerifyBaseURL is the hosted verify-engine web UI; see the URL helpers in
// verifyurls.go.
const VerifyBaseURL = "https://verify.numbersprotocol.io"
