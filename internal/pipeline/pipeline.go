// Package pipeline drives asset generation for one job: prompt construction,
// model invocation, resizing, multi-format encoding, contrast scoring,
// alt-text attachment, print-variant expansion, and persistence.
package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"assetgen/internal/contrast"
	"assetgen/internal/domain"
	"assetgen/internal/imagecodec"
	"assetgen/internal/infra"
	"assetgen/internal/prompt"
	"assetgen/internal/providers/genai"
)

// Generator is the multimodal generation capability the pipeline depends on.
type Generator interface {
	GenerateAsset(ctx context.Context, imageData []byte, mimeType, instruction string) (*genai.Result, error)
	AltText(ctx context.Context, imageData []byte, mimeType, instruction string) (string, error)
}

var _ Generator = (*genai.Client)(nil)

// Pipeline orchestrates one job's generation run end to end.
type Pipeline struct {
	jobs   domain.JobRepository
	assets domain.AssetRepository
	gen    Generator
	logger infra.Logger
}

// New constructs a pipeline with explicit collaborators.
func New(jobs domain.JobRepository, assets domain.AssetRepository, gen Generator, logger infra.Logger) *Pipeline {
	return &Pipeline{jobs: jobs, assets: assets, gen: gen, logger: logger}
}

// Run executes the full generation flow for a job the caller has already
// marked processing. Any error escaping the per-output soft-failure handling
// marks the job failed with the error message recorded verbatim; assets
// persisted before the failure remain in the store.
func (p *Pipeline) Run(ctx context.Context, jobID, imageData string, outputs []domain.OutputConfig, settings domain.GlobalSettings) {
	log := p.logger.With().Str("job_id", jobID).Logger()

	if err := p.process(ctx, log, jobID, imageData, outputs, settings); err != nil {
		log.Error().Err(err).Msg("pipeline: job failed")
		if uerr := p.jobs.UpdateStatus(ctx, jobID, domain.JobStatusFailed, err.Error()); uerr != nil {
			log.Error().Err(uerr).Msg("pipeline: failed to record job failure")
		}
		return
	}

	if err := p.jobs.UpdateStatus(ctx, jobID, domain.JobStatusCompleted, ""); err != nil {
		log.Error().Err(err).Msg("pipeline: failed to mark job completed")
		return
	}
	log.Info().Int("outputs", len(outputs)).Msg("pipeline: job completed")
}

func (p *Pipeline) process(ctx context.Context, log infra.Logger, jobID, imageData string, outputs []domain.OutputConfig, settings domain.GlobalSettings) error {
	src, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return fmt.Errorf("decode source image: %w", err)
	}
	mimeType := http.DetectContentType(src)

	var altText string
	if settings.AutoAltText {
		altText = p.altText(ctx, log, src, mimeType)
	}

	for _, cfg := range outputs {
		if err := p.processOutput(ctx, log, jobID, src, mimeType, cfg, altText, settings); err != nil {
			return err
		}
	}
	return nil
}

// altText asks the model for an accessibility description. Failure degrades
// to a fixed fallback string, never the job.
func (p *Pipeline) altText(ctx context.Context, log infra.Logger, src []byte, mimeType string) string {
	text, err := p.gen.AltText(ctx, src, mimeType, prompt.AltTextInstruction)
	if err != nil {
		log.Warn().Err(err).Msg("pipeline: alt text generation failed, using fallback")
		return prompt.FallbackAltText
	}
	return text
}

func (p *Pipeline) processOutput(ctx context.Context, log infra.Logger, jobID string, src []byte, mimeType string, cfg domain.OutputConfig, altText string, settings domain.GlobalSettings) error {
	instruction := prompt.Build(cfg.Type, cfg.Language, cfg.Width, cfg.Height)
	result, err := p.gen.GenerateAsset(ctx, src, mimeType, instruction)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrGenerationFailed, cfg.Type, err)
	}
	if len(result.Images) == 0 {
		log.Error().Str("output_type", string(cfg.Type)).Msg("pipeline: no image generated, skipping output")
		return nil
	}

	img, err := imagecodec.DecodeAndValidate(result.Images[0])
	if err != nil {
		return fmt.Errorf("decode generated %s: %w", cfg.Type, err)
	}
	resized, err := imagecodec.Resize(img, cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("resize %s: %w", cfg.Type, err)
	}

	lang := strings.TrimSpace(cfg.Language)
	if lang == "" {
		lang = prompt.DefaultLanguage
	}

	for _, format := range cfg.Formats {
		enc, err := imagecodec.Encode(resized, format, cfg.Width, cfg.Height)
		if err != nil {
			return fmt.Errorf("encode %s as %s: %w", cfg.Type, format, err)
		}
		if enc.RasterFallback {
			log.Warn().Str("output_type", string(cfg.Type)).Str("format", string(format)).Msg("pipeline: no native encoder, serving png bytes under requested label")
		}

		var score *float64
		if settings.ContrastCheck {
			score = scoreEncoded(enc.Data)
		}

		asset := &domain.Asset{
			ID:            uuid.NewString(),
			JobID:         jobID,
			OutputType:    cfg.Type,
			Language:      lang,
			Width:         cfg.Width,
			Height:        cfg.Height,
			Format:        format,
			Data:          enc.Data,
			AltText:       altText,
			ContrastScore: score,
			CreatedAt:     time.Now().UTC(),
		}
		if err := p.assets.Create(ctx, asset); err != nil {
			return fmt.Errorf("store %s asset: %w", cfg.Type, err)
		}
	}

	if cfg.Type == domain.OutputTypePoster && cfg.GeneratePrint {
		if err := p.printVariants(ctx, jobID, resized, lang, altText); err != nil {
			return err
		}
	}
	return nil
}

// printVariants derives the fixed-size print assets from the already resized
// poster image, always as PDF. Upscaling artifacts are expected when a print
// size exceeds the primary output.
func (p *Pipeline) printVariants(ctx context.Context, jobID string, poster image.Image, lang, altText string) error {
	for _, size := range domain.PrintSizes {
		resized, err := imagecodec.Resize(poster, size.Width, size.Height)
		if err != nil {
			return fmt.Errorf("resize %s: %w", size.Type, err)
		}
		enc, err := imagecodec.Encode(resized, domain.FormatPDF, size.Width, size.Height)
		if err != nil {
			return fmt.Errorf("encode %s: %w", size.Type, err)
		}
		asset := &domain.Asset{
			ID:         uuid.NewString(),
			JobID:      jobID,
			OutputType: size.Type,
			Language:   lang,
			Width:      size.Width,
			Height:     size.Height,
			Format:     domain.FormatPDF,
			Data:       enc.Data,
			AltText:    altText,
			CreatedAt:  time.Now().UTC(),
		}
		if err := p.assets.Create(ctx, asset); err != nil {
			return fmt.Errorf("store %s asset: %w", size.Type, err)
		}
	}
	return nil
}

// scoreEncoded scores the encoded payload as persisted. Non-raster payloads
// (pdf) decode to nothing and score 0; contrast is advisory either way.
func scoreEncoded(data string) *float64 {
	var score float64
	if raw, err := base64.StdEncoding.DecodeString(data); err == nil {
		score = contrast.Score(raw)
	}
	return &score
}
