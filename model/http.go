package model

type EncodeRequestBody struct {
	Chords []Notes `json:"chords"`
	Scale  *Scale  `json:"scale,omitempty"`

	// alternative to Scale, resolved through the scale catalog
	ScaleName string `json:"scale_name,omitempty"`
	ScaleRoot string `json:"scale_root,omitempty"`

	Search string `json:"search,omitempty"`
}

type EncodeResult struct {
	Input    Notes    `json:"input"`
	Root     int      `json:"root"`
	Encoding Encoding `json:"encoding"`
	GCT      string   `json:"gct"`
}

type EncodeResponse struct {
	RequestId string         `json:"request_id"`
	Scale     Scale          `json:"scale"`
	Results   []EncodeResult `json:"results"`
}

type ScaleInfo struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
