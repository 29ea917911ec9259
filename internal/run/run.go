// Package run wires the engine end to end: load catalogues, build the
// index sets and the MILP model, invoke the solver, decode the result, and
// render it — the single batch process surface named by §6.
package run

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/catalog"
	"go.xesthora.dev/xesthora/internal/catalog/csvsource"
	"go.xesthora.dev/xesthora/internal/catalog/yamlsource"
	"go.xesthora.dev/xesthora/internal/config"
	"go.xesthora.dev/xesthora/internal/decode"
	"go.xesthora.dev/xesthora/internal/engine"
	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
	"go.xesthora.dev/xesthora/internal/render"
	"go.xesthora.dev/xesthora/internal/solve"
)

// Engine is one runnable instance of the pipeline, holding nothing but its
// configuration and logger — every solve gets its own InputData, Indexes,
// and ilp.Model (§5's "no shared mutable state" requirement).
type Engine struct {
	cfg config.Config
	log *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: log}
}

// Outcome is what Execute reports back: the solve-run identifier, the
// solver's termination result, any residual infeasibilities, and the
// decoded calendars (empty if the solver never reached a primal solution).
type Outcome struct {
	RunID           string
	Result          solve.Result
	Infeasibilities []solve.Infeasibility
	Calendars       []*model.OutputCalendar
}

// Execute runs one full solve against e.cfg.InputDir and writes its
// rendered output to e.cfg.OutputDir.
func (e *Engine) Execute(ctx context.Context) (Outcome, error) {
	runID := uuid.NewString()
	log := e.log.With(zap.String("run_id", runID))

	data, err := LoadInputData(e.cfg, log)
	if err != nil {
		return Outcome{}, fmt.Errorf("run: load input: %w", err)
	}

	idx := index.Build(data)

	m, err := engine.New(data, idx, log).Build()
	if err != nil {
		return Outcome{}, fmt.Errorf("run: build model: %w", err)
	}
	if len(m.Skipped) > 0 {
		for _, s := range m.Skipped {
			log.Warn("constraint skipped", zap.String("rule", s.Rule), zap.String("index", s.Index), zap.Bool("impossible", s.Impossible))
		}
	}

	backend := &solve.CBCBackend{BinaryPath: e.cfg.CBCBinary, Log: log}
	result, err := backend.Solve(ctx, m, e.cfg.SolveTimeLimit)
	if err != nil {
		return Outcome{}, fmt.Errorf("run: solve: %w", err)
	}
	log.Info("solve finished", zap.String("status", result.Status.String()), zap.Float64("objective", result.Objective))

	infeasibilities := solve.EnumerateInfeasibilities(m, result)
	for _, inf := range infeasibilities {
		log.Warn("residual infeasibility", zap.String("constraint", inf.Constraint), zap.String("index", inf.Index), zap.Float64("slack", inf.Slack))
	}

	var calendars []*model.OutputCalendar
	if result.Status == solve.StatusOptimal || result.Status == solve.StatusFeasible || result.Status == solve.StatusTimeLimit {
		calendars = decode.New(data, idx, log).Decode(result)
		if err := e.render(calendars); err != nil {
			return Outcome{}, fmt.Errorf("run: render: %w", err)
		}
	}

	return Outcome{RunID: runID, Result: result, Infeasibilities: infeasibilities, Calendars: calendars}, nil
}

func (e *Engine) render(calendars []*model.OutputCalendar) error {
	var w render.Writer
	switch e.cfg.OutputFormat {
	case "xlsx":
		w = render.XLSXWriter{}
	default:
		w = render.JSONWriter{}
	}
	return w.Write(e.cfg.OutputDir, calendars)
}

// LoadInputData reads cfg.InputDir's catalogue files (meta manifest plus
// the four catalogues) and assembles the validated InputData aggregate. It
// is exported so the `validate` subcommand can run the §3 checks without
// building or solving a model.
func LoadInputData(cfg config.Config, log *zap.Logger) (*model.InputData, error) {
	meta, err := model.LoadMeta(filepath.Join(cfg.InputDir, "meta.yaml"))
	if err != nil {
		return nil, err
	}

	source, ext := csvsource.ReadRows, "csv"
	if cfg.InputFormat == "yaml" {
		source, ext = yamlsource.ReadRows, "yaml"
	}

	path := func(name string) string { return filepath.Join(cfg.InputDir, name+"."+ext) }

	playtime, err := catalog.Load(path("playtime"), source, model.PlaytimeSchema(), model.DecodePlaytimeRow, model.PlaytimeKeyOf, model.LessPlaytimeKey, log)
	if err != nil {
		return nil, err
	}
	tct, err := catalog.Load(path("teacher_calendar_tasks"), source, model.TeacherCalendarTasksSchema(), model.DecodeTeacherCalendarTasksRow, model.TeacherCalendarTaskKeyOf, model.LessTeacherCalendarTaskKey, log)
	if err != nil {
		return nil, err
	}
	ct, err := catalog.Load(path("calendar_tasks"), source, model.CalendarTasksSchema(), model.DecodeCalendarTasksRow, model.CalendarTaskKeyOf, model.LessCalendarTaskKey, log)
	if err != nil {
		return nil, err
	}
	fixed, err := catalog.Load(path("fixed_assignments"), source, model.FixedAssignmentsSchema(), model.DecodeFixedAssignmentRow, model.FixedAssignmentKeyOf, model.LessFixedAssignmentKey, log)
	if err != nil {
		return nil, err
	}

	return model.NewInputData(meta.Classes, meta.Days, meta.Times, meta.PlaytimeName, playtime, tct, ct, fixed)
}
