package model

// SettingsResponse represents the stored configuration as returned by the
// settings endpoints.
type SettingsResponse struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Special   bool `json:"special"`
}

// SettingsUpdateRequest represents a settings edit. Nil fields keep the
// stored value, mirroring GenerateRequest semantics.
type SettingsUpdateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
}
