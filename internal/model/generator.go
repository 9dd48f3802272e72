package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> stored setting)
// and explicit false; a zero length likewise means "use the stored length".
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
}

// GenerateResponse represents a password generation response. Saved reports
// whether the settings used were flushed back to disk; false means generation
// succeeded but the settings file could not be written.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Saved    bool   `json:"saved"`
}
