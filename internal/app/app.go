// Package app wires the analysis pipeline: document text in, issuer and
// equipment identification, standards extraction, compliance validation,
// JSON result artifacts out.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/orcnlabs/certcheck/internal/compliance"
	"github.com/orcnlabs/certcheck/internal/docsource"
	"github.com/orcnlabs/certcheck/internal/equipment"
	"github.com/orcnlabs/certcheck/internal/issuer"
	"github.com/orcnlabs/certcheck/internal/knowledge"
	"github.com/orcnlabs/certcheck/internal/standards"
)

// Config is the resolved runtime configuration after flags and the optional
// config file have been merged.
type Config struct {
	InputDir  string
	OutputDir string
	Knowledge knowledge.Paths
	Verbose   bool
}

// ErrNoDocuments is returned when the input directory yields nothing to
// analyze. Per the exit-code policy this is a non-zero exit.
var ErrNoDocuments = fmt.Errorf("no documents to analyze")

// App holds the loaded knowledge base and the static extraction
// configuration for one batch run.
type App struct {
	cfg        Config
	base       *knowledge.Base
	identifier *issuer.Identifier
	extractor  *standards.Extractor
}

// New loads the knowledge base and builds the default issuer and extraction
// tables. Missing knowledge tables degrade inside the loader; New itself
// fails only on unusable output configuration.
func New(cfg Config) (*App, error) {
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	return &App{
		cfg:        cfg,
		base:       knowledge.Load(cfg.Knowledge),
		identifier: issuer.Default(),
		extractor:  standards.Default(),
	}, nil
}

// MissingStandard enriches a missing standard id with its human-facing
// detail from the standards catalog, when available.
type MissingStandard struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	ReferenceURL string `json:"reference_url,omitempty"`
}

// Analysis is the per-document output bundle: the verdict plus the
// intermediate extraction results the report layer renders.
type Analysis struct {
	Document    string                     `json:"document"`
	Issuer      string                     `json:"issuer,omitempty"`
	IssuerKnown bool                       `json:"issuer_known"`
	Equipment   []knowledge.EquipmentEntry `json:"equipment,omitempty"`
	Standards   []string                   `json:"standards,omitempty"`
	Result      compliance.Result          `json:"result"`
	Missing     []MissingStandard          `json:"missing_standards,omitempty"`
	AnalyzedAt  time.Time                  `json:"analyzed_at"`
}

// Analyze runs the full pipeline over one document's text. It never fails:
// degenerate inputs surface as sentinel fields on the Analysis.
func (a *App) Analyze(name, text string) Analysis {
	issuerID, known := a.identifier.Identify(text)
	matched := equipment.Match(text, a.base.Equipment)
	codes := a.extractor.Extract(text, issuerID)
	result := compliance.Validate(matched, codes, a.base.Requirements)

	analysis := Analysis{
		Document:    name,
		Issuer:      issuerID,
		IssuerKnown: known,
		Equipment:   matched,
		Standards:   codes,
		Result:      result,
		AnalyzedAt:  time.Now().UTC(),
	}
	for _, id := range result.Missing {
		m := MissingStandard{ID: id}
		if info, ok := a.base.StandardByID(id); ok {
			m.Name = info.Name
			m.Description = info.Description
			m.ReferenceURL = info.ReferenceURL
		}
		analysis.Missing = append(analysis.Missing, m)
	}
	return analysis
}

// Summary aggregates one batch run.
type Summary struct {
	Documents   int       `json:"documents"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	NoEquipment int       `json:"no_equipment"`
	NoStandards int       `json:"no_standards"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Run analyzes every document under the input directory sequentially and
// writes one JSON artifact per document plus a batch summary. Cancellation
// is honored between documents, so a canceled run never leaves a partial
// artifact for the document in flight.
func (a *App) Run(ctx context.Context) error {
	docs, err := docsource.LoadDir(a.cfg.InputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return ErrNoDocuments
	}

	summary := Summary{Documents: len(docs), StartedAt: time.Now().UTC()}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		analysis := a.Analyze(doc.Name, doc.Text)
		a.logAnalysis(analysis)
		a.tally(&summary, analysis)
		if err := a.writeArtifact(analysis); err != nil {
			return err
		}
	}
	summary.FinishedAt = time.Now().UTC()
	log.Info().
		Int("documents", summary.Documents).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Msg("batch finished")
	return a.writeSummary(summary)
}

func (a *App) tally(s *Summary, analysis Analysis) {
	if analysis.Result.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
	if analysis.Result.NoEquipment {
		s.NoEquipment++
	}
	if analysis.Result.NoStandards {
		s.NoStandards++
	}
}

func (a *App) logAnalysis(analysis Analysis) {
	evt := log.Info().
		Str("document", analysis.Document).
		Bool("passed", analysis.Result.Passed).
		Int("equipment", len(analysis.Equipment)).
		Int("standards", len(analysis.Standards))
	if analysis.IssuerKnown {
		evt = evt.Str("issuer", analysis.Issuer)
	}
	switch {
	case analysis.Result.NoEquipment:
		evt.Msg("no equipment identified; check document quality")
	case analysis.Result.NoStandards && !analysis.Result.Passed:
		evt.Msg("no standards extracted")
	case !analysis.Result.Passed:
		evt.Strs("missing", analysis.Result.Missing).Msg("required standards missing")
	default:
		evt.Msg("compliant")
	}
}

func (a *App) writeArtifact(analysis Analysis) error {
	if a.cfg.OutputDir == "" {
		return nil
	}
	name := strings.TrimSuffix(analysis.Document, filepath.Ext(analysis.Document)) + ".analysis.json"
	return writeJSON(filepath.Join(a.cfg.OutputDir, name), analysis)
}

func (a *App) writeSummary(summary Summary) error {
	if a.cfg.OutputDir == "" {
		return nil
	}
	return writeJSON(filepath.Join(a.cfg.OutputDir, "summary.json"), summary)
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
