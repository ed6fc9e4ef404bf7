package transfer

type PostCreation struct {
	Platform          string `json:"platform"`
	Caption           string `json:"caption"`
	ScheduledDatetime string `json:"scheduled_datetime"`
	LinkOrAssetNote   string `json:"link_or_asset_note"`
}

// PostUpdate carries a partial update; nil fields are left untouched.
type PostUpdate struct {
	Platform          *string `json:"platform"`
	Caption           *string `json:"caption"`
	ScheduledDatetime *string `json:"scheduled_datetime"`
	LinkOrAssetNote   *string `json:"link_or_asset_note"`
}
