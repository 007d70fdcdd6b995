// Package domain contains the prediction model of the mock responder:
// request and response shapes, the success/error decision and the sampling of synthetic results.
package domain

import (
	"context"
	"math"
	"time"
)

// Config is the responder configuration. It is built once at startup and never mutated.
type Config struct {
	Delay     ResponseDelay
	ErrorRate ErrorRate
	Profile   PredictionProfile
	Failures  []Failure
}

// NewConfig returns a Config with the default profile and failure table.
func NewConfig(delay ResponseDelay, errorRate ErrorRate) Config {
	return Config{
		Delay:     delay,
		ErrorRate: errorRate,
		Profile:   DefaultProfile(),
		Failures:  DefaultFailures(),
	}
}

// Result is the answer to one prediction request. Exactly one of Success and Failure is set.
type Result struct {
	Variant Variant
	Success *SuccessResponse
	Failure *ErrorResponse
}

// Body returns the response body matching the variant.
func (r Result) Body() any {
	if r.Variant == VariantError {
		return r.Failure
	}
	return r.Success
}

// Predictor produces synthetic prediction results.
type Predictor struct {
	config Config
	random Random
	logger Logger
	now    func() time.Time
}

// Predict waits for the configured delay and then answers with either a sampled
// prediction or an injected failure. It returns ctx.Err() if ctx ends during the delay.
func (p *Predictor) Predict(ctx context.Context, req *PredictionRequest) (Result, error) {
	if err := p.wait(ctx); err != nil {
		return Result{}, err
	}

	if Decide(p.random.Float64(), p.config.ErrorRate) == VariantError {
		failure := p.config.Failures[p.random.IntN(len(p.config.Failures))]
		p.logger.Info("returning error: [%s] %s", failure.Code, failure.Message)
		return Result{Variant: VariantError, Failure: failure.Response()}, nil
	}

	resp := p.sample(req)
	p.logger.Info("returning prediction: %.2f%% (confidence: %.2f%%)", resp.Probability*100, resp.Confidence*100)
	return Result{Variant: VariantSuccess, Success: resp}, nil
}

func (p *Predictor) wait(ctx context.Context) error {
	delay := p.config.Delay.Duration()
	if delay <= 0 {
		return nil
	}

	p.logger.Info("simulating %s processing delay...", delay)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Predictor) sample(req *PredictionRequest) *SuccessResponse {
	profile := p.config.Profile
	span := profile.ProcessingTimeMaxMS - profile.ProcessingTimeMinMS + 1

	return &SuccessResponse{
		Success:     true,
		DatasetID:   req.DatasetIDOrUnknown(),
		Probability: round4(p.uniform(profile.Probability)),
		Confidence:  round4(p.uniform(profile.Confidence)),
		ProcessedAt: p.now().UTC().Format(time.RFC3339Nano),
		Metadata: ResponseMetadata{
			ModelVersion:     profile.ModelVersion,
			ProcessingTimeMS: profile.ProcessingTimeMinMS + p.random.IntN(span),
		},
	}
}

func (p *Predictor) uniform(r Range) float64 {
	return r.Min + p.random.Float64()*(r.Max-r.Min)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// WithClock replaces the clock used for processed_at.
func (p *Predictor) WithClock(now func() time.Time) *Predictor {
	p.now = now
	return p
}

// NewPredictor creates a Predictor. An empty failure table falls back to DefaultFailures.
func NewPredictor(config Config, random Random, logger Logger) *Predictor {
	if len(config.Failures) == 0 {
		config.Failures = DefaultFailures()
	}
	return &Predictor{
		config: config,
		random: random,
		logger: logger,
		now:    time.Now,
	}
}
