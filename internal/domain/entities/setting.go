package entities

import "time"

// SiteSetting is a single key/value configuration pair edited from the admin.
type SiteSetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// SiteSettings indexes settings by key.
type SiteSettings map[string]string

// Get returns the value for key, or fallback when it is missing or empty.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}
