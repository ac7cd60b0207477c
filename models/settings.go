package models

// Setting is one key of the flat site configuration (site name, logo URL,
// capacity limit). Every value is stored as a string; consumers parse.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// Settings keys used by the server itself.
const (
	SettingCapacityLimit = "capacity_limit" // max orders per day, "0" or absent = unlimited
	SettingSiteName      = "site_name"
	SettingLogoURL       = "logo_url"
)
