package domain

// Asset references a file kept by the external asset store.
type Asset struct {
	URL string `json:"url"`
	// ExternalID is the asset store's identifier, used to destroy the asset.
	ExternalID string `json:"externalAssetId"`
}

// AssetIDs returns the external ids of the given assets, preserving order.
func AssetIDs(assets []Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ExternalID)
	}

	return ids
}
