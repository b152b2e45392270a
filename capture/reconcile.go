package capture

// Wire names of the merge-service fields that AssetTree promotes to named
// attributes. Everything outside this set lands verbatim in Extra. The
// partition is decided here, in one place, by set membership.
var knownTreeFields = map[string]struct{}{
	"assetCid":          {},
	"assetSha256":       {},
	"creatorName":       {},
	"creatorWallet":     {},
	"createdAt":         {},
	"locationCreated":   {},
	"caption":           {},
	"headline":          {},
	"license":           {},
	"mimeType":          {},
	"nftRecord":         {},
	"usedBy":            {},
	"integrityCid":      {},
	"digitalSourceType": {},
	"miningPreference":  {},
	"generatedBy":       {},
}

// unwrapMergedTree normalizes the merge service's two response shapes. The
// service may wrap the reconciled record under mergedAssetTree or return
// it bare; callers past this point only ever see the bare form.
func unwrapMergedTree(raw map[string]any) map[string]any {
	if wrapped, ok := raw["mergedAssetTree"].(map[string]any); ok {
		return wrapped
	}
	return raw
}

// licenseFromValue normalizes the license field's two wire forms. A plain
// string is the license name with no document; an object maps field-wise.
// Anything else (including absence) yields nil, never an empty struct.
func licenseFromValue(value any) *License {
	switch v := value.(type) {
	case string:
		return &License{Name: v}
	case map[string]any:
		return &License{
			Name:     stringField(v, "name"),
			Document: stringField(v, "document"),
		}
	default:
		return nil
	}
}

// assetTreeFromMap reconciles a bare merged-tree object into an AssetTree:
// known fields are promoted to named attributes and every other field is
// copied into Extra under its original wire name.
func assetTreeFromMap(merged map[string]any) *AssetTree {
	tree := &AssetTree{
		AssetCID:          stringField(merged, "assetCid"),
		AssetSHA256:       stringField(merged, "assetSha256"),
		CreatorName:       stringField(merged, "creatorName"),
		CreatorWallet:     stringField(merged, "creatorWallet"),
		CreatedAt:         int64Field(merged, "createdAt"),
		LocationCreated:   stringField(merged, "locationCreated"),
		Caption:           stringField(merged, "caption"),
		Headline:          stringField(merged, "headline"),
		License:           licenseFromValue(merged["license"]),
		MimeType:          stringField(merged, "mimeType"),
		NftRecord:         stringField(merged, "nftRecord"),
		UsedBy:            stringField(merged, "usedBy"),
		IntegrityCID:      stringField(merged, "integrityCid"),
		DigitalSourceType: stringField(merged, "digitalSourceType"),
		MiningPreference:  stringField(merged, "miningPreference"),
		GeneratedBy:       stringField(merged, "generatedBy"),
		Extra:             map[string]any{},
	}

	for key, value := range merged {
		if _, known := knownTreeFields[key]; !known {
			tree.Extra[key] = value
		}
	}

	return tree
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// int64Field coerces the numeric forms a JSON decode can produce. The
// decoder yields float64 for untyped numbers.
func int64Field(m map[string]any, key string) int64 {
	switch n := m[key].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
