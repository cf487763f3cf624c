// Package pipeline runs a batch of resumes against one job description's skill list.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/config"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/logging"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/matching"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/scoring"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/synonyms"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// ErrEvalTimeout is recorded when one (resume, skill) evaluation exceeds Config.EvalTimeout.
var ErrEvalTimeout = errors.New("skill evaluation timed out")

// Resume is one submitted resume with its already-extracted text.
type Resume struct {
	ID   string
	Text string
}

// Input is everything a run depends on. The run reads nothing else.
type Input struct {
	JDText   string
	Resumes  []Resume
	Skills   []types.SkillEntry
	Synonyms types.SynonymSet
	Config   config.Config
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Progress steps.
const (
	StepSkillsResolved = "skills_resolved"
	StepResumeScored   = "resume_scored"
)

// RunOptions holds collaborators that do not affect results.
// OnProgress may be called from several goroutines at once.
type RunOptions struct {
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// RunSummary describes a finished run.
type RunSummary struct {
	RunID    string        `json:"run_id"`
	Resumes  int           `json:"resumes"`
	Skills   int           `json:"skills"`
	Failures int           `json:"failures"`
	Duration time.Duration `json:"duration"`

	// Entries is the resolved skill list, requirements filled in.
	Entries []types.SkillEntry `json:"entries"`
}

// resolvedSkill is a skill with everything needed to evaluate it, computed once per run.
type resolvedSkill struct {
	entry    types.SkillEntry
	synonyms []string
	forms    []string
}

// evaluator holds the read-only state shared by every evaluation in a run.
type evaluator struct {
	cfg       config.Config
	extractor matching.Extractor
}

// evaluateSkill computes one record. It is a variable so tests can inject failures.
var evaluateSkill = func(ctx context.Context, ev *evaluator, text string, skill resolvedSkill) (types.MatchRecord, error) {
	record := types.MatchRecord{
		Skill:         skill.entry.Label,
		Group:         skill.entry.Group,
		RequiredYears: skill.entry.RequiredYears,
	}

	tier, err := matching.DetectContext(ctx, text, skill.entry.Label, skill.synonyms, ev.cfg.Strict())
	if err != nil {
		return record, err
	}
	record.Present = tier != matching.TierNone
	if record.Present {
		record.YearsFound, err = ev.extractor.ExtractContext(ctx, text, skill.forms)
		if err != nil {
			return record, err
		}
	}
	record.Score = scoring.ScoreSkill(record.Present, record.YearsFound, record.RequiredYears, ev.cfg.PresenceWeight)
	return record, nil
}

// Run scores every resume against every skill.
//
// Results come back in input order, one per resume, even when a resume's text is
// empty. A failing (resume, skill) evaluation is recorded on its MatchRecord and
// never aborts the batch. The only errors are an empty job description with no
// skills and context cancellation.
func Run(ctx context.Context, in Input, opts RunOptions) ([]types.ResumeResult, *RunSummary, error) {
	logger := logging.OrNop(opts.Logger)
	start := time.Now()
	runID := uuid.New().String()

	cfg := in.Config.MergeWithDefaults(config.Default())
	cfg.PresenceWeight = scoring.ClampPresenceWeight(cfg.PresenceWeight)

	skills, err := resolveSkills(in)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]types.SkillEntry, len(skills))
	for i, s := range skills {
		entries[i] = s.entry
	}
	emitProgress(opts, runID, StepSkillsResolved, fmt.Sprintf("Resolved %d skills", len(skills)), entries)

	logger = logger.With(zap.String("run_id", runID))
	logger.Info("match run started",
		zap.Int("resumes", len(in.Resumes)),
		zap.Int("skills", len(skills)),
		zap.Float64("presence_weight", cfg.PresenceWeight),
		zap.Bool("strict", cfg.Strict()),
	)

	ev := &evaluator{
		cfg:       cfg,
		extractor: matching.NewExtractor(cfg.Window, matching.Fallback(cfg.ExperienceFallback)),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]types.ResumeResult, len(in.Resumes))
	failures := make([]int, len(in.Resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, resume := range in.Resumes {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i], failures[i] = scoreResume(gCtx, ev, resume, skills, logger)
			emitProgress(opts, runID, StepResumeScored,
				fmt.Sprintf("Scored %s: %.2f%%", resume.ID, results[i].OverallPercent), results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	summary := &RunSummary{
		RunID:    runID,
		Resumes:  len(in.Resumes),
		Skills:   len(skills),
		Duration: time.Since(start),
		Entries:  entries,
	}
	for _, f := range failures {
		summary.Failures += f
	}

	logger.Info("match run finished",
		zap.Int("failures", summary.Failures),
		zap.Duration("duration", summary.Duration),
	)
	return results, summary, nil
}

// resolveSkills normalizes labels, fills requirements from the job description
// and attaches synonyms. Synonym keys are normalized like labels, so "ci/cd"
// and "CI CD" find the same entry.
func resolveSkills(in Input) ([]resolvedSkill, error) {
	entries := parsing.NormalizeEntries(in.Skills)
	if len(entries) == 0 && strings.TrimSpace(in.JDText) == "" {
		return nil, parsing.ErrEmptyJobDescription
	}
	if len(entries) == 0 {
		entries = parsing.CandidatesToSkills(parsing.ExtractCandidates(in.JDText))
	}

	syns := synonyms.Merge(nil, in.Synonyms)
	reqs := parsing.ParseRequirements(in.JDText, entries)
	skills := make([]resolvedSkill, len(entries))
	for i, e := range entries {
		e.RequiredYears = reqs[e.Key()]
		skills[i] = resolvedSkill{
			entry:    e,
			synonyms: syns.For(e.Label),
			forms:    syns.Forms(e.Label),
		}
	}
	return skills, nil
}

// scoreResume evaluates every skill for one resume and returns the row and its failure count.
func scoreResume(ctx context.Context, ev *evaluator, resume Resume, skills []resolvedSkill, logger *zap.Logger) (types.ResumeResult, int) {
	records := make([]types.MatchRecord, len(skills))
	failures := 0

	for j, skill := range skills {
		if strings.TrimSpace(resume.Text) == "" {
			records[j] = failedRecord(skill, nil)
			continue
		}

		record, err := evaluateBounded(ctx, ev, resume.Text, skill)
		if err != nil {
			failures++
			logger.Warn("skill evaluation failed",
				zap.String("resume", resume.ID),
				zap.String("skill", skill.entry.Label),
				zap.Error(err),
			)
			record = failedRecord(skill, err)
		} else {
			logger.Debug("skill evaluated",
				zap.String("resume", resume.ID),
				zap.String("skill", record.Skill),
				zap.Bool("present", record.Present),
				zap.Float64("score", record.Score),
			)
		}
		records[j] = record
	}

	breakdown := scoring.Aggregate(records)
	return types.ResumeResult{
		ResumeID:       resume.ID,
		OverallPercent: breakdown.OverallPercent,
		Records:        records,
	}, failures
}

// failedRecord is the zero-presence record for a skill that could not be evaluated.
func failedRecord(skill resolvedSkill, err error) types.MatchRecord {
	record := types.MatchRecord{
		Skill:         skill.entry.Label,
		Group:         skill.entry.Group,
		RequiredYears: skill.entry.RequiredYears,
	}
	if err != nil {
		record.Err = err.Error()
	}
	return record
}

// evaluateBounded runs one evaluation under the configured timeout and converts
// panics into errors.
func evaluateBounded(ctx context.Context, ev *evaluator, text string, skill resolvedSkill) (types.MatchRecord, error) {
	if ev.cfg.EvalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ev.cfg.EvalTimeout)
		defer cancel()
	}

	type outcome struct {
		record types.MatchRecord
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("skill evaluation panicked: %v", r)}
			}
		}()
		record, err := evaluateSkill(ctx, ev, text, skill)
		done <- outcome{record: record, err: err}
	}()

	select {
	case out := <-done:
		if errors.Is(out.err, context.DeadlineExceeded) {
			return types.MatchRecord{}, ErrEvalTimeout
		}
		return out.record, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return types.MatchRecord{}, ErrEvalTimeout
		}
		return types.MatchRecord{}, ctx.Err()
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}
