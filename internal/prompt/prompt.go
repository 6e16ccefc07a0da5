// Package prompt maps output archetypes to natural-language generation
// instructions. Pure lookup, no network or state.
package prompt

import (
	"fmt"
	"strings"

	"assetgen/internal/domain"
)

// AltTextInstruction is the accessibility-focused instruction sent alongside
// the source image when alt text is requested.
const AltTextInstruction = "Generate a concise, descriptive alt text for this image focusing on key visual elements and purpose. Keep it under 125 characters."

// FallbackAltText substitutes for a failed alt-text generation. Alt-text
// failure is never job-fatal.
const FallbackAltText = "Marketing asset image"

// DefaultLanguage applies when a config leaves the language blank.
const DefaultLanguage = "English"

type template func(lang string, width, height int) string

var templates = map[domain.OutputType]template{
	domain.OutputTypePoster: func(lang string, w, h int) string {
		return fmt.Sprintf("Transform this product image into a professional marketing poster in %s. Create a visually striking design with clear hierarchy, compelling headlines, and modern aesthetic. Size: %dx%dpx.", lang, w, h)
	},
	domain.OutputTypeBanner: func(lang string, w, h int) string {
		return fmt.Sprintf("Create a web banner advertisement in %s from this product image. Design should be attention-grabbing with clear call-to-action. Optimized for %dx%dpx.", lang, w, h)
	},
	domain.OutputTypeAd: func(lang string, w, h int) string {
		return fmt.Sprintf("Design a digital advertisement in %s using this product image. Focus on conversion with compelling copy and strategic layout. Dimensions: %dx%dpx.", lang, w, h)
	},
	domain.OutputTypeSocialPost: func(lang string, w, h int) string {
		return fmt.Sprintf("Create an engaging social media post graphic in %s featuring this product. Eye-catching, shareable design optimized for %dx%dpx.", lang, w, h)
	},
	domain.OutputTypeBrochure: func(lang string, w, h int) string {
		return fmt.Sprintf("Design a brochure cover in %s showcasing this product. Professional, informative, and visually appealing. Format: %dx%dpx.", lang, w, h)
	},
}

// Build returns the generation instruction for the output type. Unknown types
// use the poster template.
func Build(outputType domain.OutputType, lang string, width, height int) string {
	fn, ok := templates[outputType]
	if !ok {
		fn = templates[domain.OutputTypePoster]
	}
	return fn(NormalizeLanguage(lang), width, height)
}

// NormalizeLanguage trims the free-text language name and falls back to the
// default when blank. Anything else embeds in the prompt exactly as the
// client sent it.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
