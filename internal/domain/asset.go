package domain

import "time"

// OutputType enumerates the asset archetypes a client can request.
type OutputType string

const (
	OutputTypePoster     OutputType = "poster"
	OutputTypeBanner     OutputType = "banner"
	OutputTypeAd         OutputType = "ad"
	OutputTypeSocialPost OutputType = "social_post"
	OutputTypeBrochure   OutputType = "brochure"

	// Synthetic types assigned to poster print variants.
	OutputTypePosterPrintA2 OutputType = "poster_print_A2"
	OutputTypePosterPrintA3 OutputType = "poster_print_A3"
)

// Format enumerates requestable file formats. svg, ai and psd have no native
// encoder and are served as PNG bytes under the requested label.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
	FormatSVG  Format = "svg"
	FormatAI   Format = "ai"
	FormatPSD  Format = "psd"
)

// OutputConfig is one requested asset archetype. It is request-scoped and
// never persisted.
type OutputConfig struct {
	Type          OutputType
	Language      string
	Width         int
	Height        int
	Formats       []Format
	GeneratePrint bool
}

// GlobalSettings carries per-request pipeline toggles. BrandGuidelines is
// accepted but never consulted by the pipeline.
type GlobalSettings struct {
	AutoAltText     bool
	ContrastCheck   bool
	BrandGuidelines bool
}

// DefaultGlobalSettings mirrors the defaults applied when a generate request
// omits the settings block.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{AutoAltText: true, ContrastCheck: true}
}

// Asset is one persisted generated file. Immutable after creation.
type Asset struct {
	ID            string
	JobID         string
	OutputType    OutputType
	Language      string
	Width         int
	Height        int
	Format        Format
	Data          string
	AltText       string
	ContrastScore *float64
	CreatedAt     time.Time
}

// PrintSize is a fixed poster print target in pixels at 72 DPI.
type PrintSize struct {
	Type   OutputType
	Width  int
	Height int
}

// PrintSizes lists the poster print variants produced when a poster config
// requests print generation. Always encoded as PDF only.
var PrintSizes = []PrintSize{
	{Type: OutputTypePosterPrintA2, Width: 1191, Height: 1684},
	{Type: OutputTypePosterPrintA3, Width: 842, Height: 1191},
}
