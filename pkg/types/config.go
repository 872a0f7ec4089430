package types

// RenderConfig holds the operator-specified print geometry. Values come
// from CLI flags, the config file, or environment, in that order of
// precedence.
type RenderConfig struct {
	// DPI is the resolution of the input images.
	DPI int `json:"dpi" yaml:"dpi"`

	// WidthMM is the width of the printable area in millimetres.
	WidthMM int `json:"width" yaml:"width"`

	// HeightMM is the height of the printable area in millimetres.
	HeightMM int `json:"height" yaml:"height"`
}
