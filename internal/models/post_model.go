package models

import "time"

type ScheduledPost struct {
	ID                int64     `db:"id" json:"id"`
	Platform          string    `db:"platform" json:"platform"`
	Caption           string    `db:"caption" json:"caption"`
	ScheduledDatetime time.Time `db:"scheduled_datetime" json:"scheduled_datetime"`
	LinkOrAssetNote   string    `db:"link_or_asset_note" json:"link_or_asset_note"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
	IsPosted          bool      `db:"is_posted" json:"is_posted"`
}

const (
	PlatformTiktok    = "tiktok"
	PlatformYoutube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformLinkedin  = "linkedin"
	PlatformThreads   = "threads"
)

// Platforms is the supported set in display order.
var Platforms = []string{
	PlatformTiktok,
	PlatformYoutube,
	PlatformInstagram,
	PlatformFacebook,
	PlatformLinkedin,
	PlatformThreads,
}

type PlatformInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var PlatformDetails = map[string]PlatformInfo{
	PlatformTiktok:    {Name: "TikTok", Color: "#000000"},
	PlatformYoutube:   {Name: "YouTube", Color: "#FF0000"},
	PlatformInstagram: {Name: "Instagram", Color: "#E1306C"},
	PlatformFacebook:  {Name: "Facebook", Color: "#1877F2"},
	PlatformLinkedin:  {Name: "LinkedIn", Color: "#0A66C2"},
	PlatformThreads:   {Name: "Threads", Color: "#333333"},
}
