package models

// Service is a static catalog entry describing a counseling service.
type Service struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Fee      string `json:"fee"`
}

// Counselor is a static catalog entry describing a counselor.
type Counselor struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	Rating     string `json:"rating"`
}
