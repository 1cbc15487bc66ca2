// Package convert orchestrates one conversion job: platform detection,
// field mapping, concurrent row transformation, and validation.
package convert

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SalaazMarket/Converter/internal/mapping"
	"github.com/SalaazMarket/Converter/internal/observability"
	"github.com/SalaazMarket/Converter/internal/platform"
	"github.com/SalaazMarket/Converter/internal/tabular"
	"github.com/SalaazMarket/Converter/internal/taxonomy"
	"github.com/SalaazMarket/Converter/internal/transform"
)

// Config holds pipeline configuration.
type Config struct {
	Workers           int
	DefaultCategoryID int64
	MinSignatureHits  int
	PlatformPriority  []string
	VariantKeywords   []string
}

// Request describes one conversion job.
type Request struct {
	Table *tabular.Table
	// Overrides replace single field mappings before finalization,
	// target field -> source column.
	Overrides map[string]string
	// OnRow, when set, receives progress after each transformed row.
	OnRow func(done, total int)
}

// ReportEntry explains one excluded or failed row.
type ReportEntry struct {
	RowIndex int
	Field    string
	Reason   string
}

// Report summarizes a conversion job. Every excluded or failed row has
// an entry; nothing is dropped silently.
type Report struct {
	TotalRows    int
	OutputRows   int
	ExcludedRows int
	InvalidRows  int
	Entries      []ReportEntry
}

// Result is the outcome of a conversion job.
type Result struct {
	JobID     uuid.UUID
	Platform  string
	Mapping   *mapping.Frozen
	Rows      []*transform.TargetRow
	Report    Report
	StartedAt time.Time
	Duration  time.Duration
}

// Pipeline runs conversion jobs over a shared read-only taxonomy and
// synonym table. Each job owns its mapping and row outputs
// exclusively, so one pipeline serves any number of sequential jobs.
type Pipeline struct {
	logger    *observability.Logger
	store     *taxonomy.Store
	matcher   *taxonomy.Matcher
	validator *transform.Validator
	profiles  []platform.Profile
	cfg       Config
}

// NewPipeline creates a pipeline.
func NewPipeline(logger *observability.Logger, store *taxonomy.Store, synonyms *taxonomy.SynonymTable, cfg Config) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.DefaultCategoryID < 1 {
		cfg.DefaultCategoryID = 1
	}

	return &Pipeline{
		logger:    logger,
		store:     store,
		matcher:   taxonomy.NewMatcher(store, synonyms, cfg.DefaultCategoryID),
		validator: transform.NewValidator(store),
		profiles:  platform.Profiles(cfg.PlatformPriority),
		cfg:       cfg,
	}
}

// DetectPlatform classifies the header against the configured profile
// priority order.
func (p *Pipeline) DetectPlatform(header []string) platform.Profile {
	return platform.Detect(header, p.profiles, p.cfg.MinSignatureHits)
}

// ProposeMapping returns the detected profile and the automatic field
// mapping for a header, without converting anything.
func (p *Pipeline) ProposeMapping(header []string) (platform.Profile, mapping.FieldMapping) {
	profile := p.DetectPlatform(header)
	return profile, mapping.Propose(header, profile)
}

// Convert runs one conversion job. Fatal errors (empty input, required
// fields unmapped) abort before row processing; row-level failures are
// collected into the report and never interrupt remaining rows.
func (p *Pipeline) Convert(ctx context.Context, req Request) (*Result, error) {
	if req.Table == nil || len(req.Table.Columns) == 0 {
		return nil, fmt.Errorf("input table has no header")
	}

	jobID := uuid.New()
	startedAt := time.Now()
	logger := p.logger.WithJob(jobID.String())

	profile, proposal := p.ProposeMapping(req.Table.Columns)
	logger.Info().
		Str("platform", profile.Name).
		Int("rows", req.Table.Len()).
		Int("columns", len(req.Table.Columns)).
		Msg("Starting conversion job")

	frozen, err := p.finalizeMapping(proposal, req)
	if err != nil {
		return nil, err
	}

	transformer := transform.NewTransformer(frozen, p.matcher, req.Table.Columns, transform.Config{
		DefaultCategoryID: p.cfg.DefaultCategoryID,
		VariantKeywords:   p.cfg.VariantKeywords,
	})

	outcomes, err := p.transformRows(ctx, transformer, req)
	if err != nil {
		// Cancellation discards already-produced partial output.
		return nil, fmt.Errorf("transform rows: %w", err)
	}

	result := &Result{
		JobID:     jobID,
		Platform:  profile.Name,
		Mapping:   frozen,
		StartedAt: startedAt,
	}
	p.assemble(result, outcomes)
	result.Duration = time.Since(startedAt)

	logger.Info().
		Int("output_rows", result.Report.OutputRows).
		Int("excluded_rows", result.Report.ExcludedRows).
		Int("invalid_rows", result.Report.InvalidRows).
		Dur("duration", result.Duration).
		Msg("Conversion job finished")

	return result, nil
}

// finalizeMapping applies manual overrides to the proposal and freezes
// it. Override order is by field name so repeated runs behave the
// same.
func (p *Pipeline) finalizeMapping(proposal mapping.FieldMapping, req Request) (*mapping.Frozen, error) {
	builder := mapping.NewBuilder(proposal, req.Table.Columns)

	fields := make([]string, 0, len(req.Overrides))
	for field := range req.Overrides {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if err := builder.Override(field, req.Overrides[field]); err != nil {
			return nil, fmt.Errorf("apply mapping override: %w", err)
		}
	}

	frozen, err := builder.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize field mapping: %w", err)
	}
	return frozen, nil
}

type rowOutcome struct {
	row *transform.TargetRow
	err error
}

// transformRows processes rows concurrently across the configured
// worker count. Outcomes are written by input index so output order is
// restored regardless of completion order.
func (p *Pipeline) transformRows(ctx context.Context, transformer *transform.Transformer, req Request) ([]rowOutcome, error) {
	total := req.Table.Len()
	outcomes := make([]rowOutcome, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	var done int32
	for i := range req.Table.Rows {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row, err := transformer.TransformRow(req.Table.Rows[i])
			outcomes[i] = rowOutcome{row: row, err: err}

			if req.OnRow != nil {
				req.OnRow(int(atomic.AddInt32(&done, 1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// assemble walks outcomes in input order, collecting surviving rows
// and report entries. Validation failures are reported but the row
// still ships; exclusions drop the row with a reason.
func (p *Pipeline) assemble(result *Result, outcomes []rowOutcome) {
	report := &result.Report
	report.TotalRows = len(outcomes)

	for i, outcome := range outcomes {
		if outcome.err != nil {
			report.ExcludedRows++
			report.Entries = append(report.Entries, entryFromError(i, outcome.err))
			continue
		}

		validation := p.validator.Validate(i, outcome.row)
		if !validation.Passed {
			report.InvalidRows++
			for _, fe := range validation.FieldErrors {
				report.Entries = append(report.Entries, ReportEntry{
					RowIndex: i,
					Field:    fe.Field,
					Reason:   fe.Reason,
				})
			}
		}

		result.Rows = append(result.Rows, outcome.row)
		report.OutputRows++
	}
}

func entryFromError(rowIndex int, err error) ReportEntry {
	if excluded, ok := err.(*transform.RowExcludedError); ok {
		return ReportEntry{RowIndex: rowIndex, Field: excluded.Field, Reason: excluded.Reason}
	}
	return ReportEntry{RowIndex: rowIndex, Reason: err.Error()}
}
