package solve

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/ilp"
)

// CBCBackend is the reference MILP binding (§6): it renders the
// solver-agnostic ilp.Model to CPLEX-LP format and shells out to an
// external `cbc` binary, reading primal values back from CBC's solution
// file. This is the direct analogue of the original engine's
// SolverFactory("cbc") call — the Go code only invokes a process, exactly
// as Pyomo's CBC binding does.
type CBCBackend struct {
	// BinaryPath is the `cbc` executable to invoke. Defaults to "cbc" (look
	// up on PATH) when empty.
	BinaryPath string
	// WorkDir overrides the temp directory root used for the .lp/.sol
	// files. Empty means os.MkdirTemp's default.
	WorkDir string
	Log     *zap.Logger
}

var _ Backend = (*CBCBackend)(nil)

func (c *CBCBackend) binary() string {
	if c.BinaryPath != "" {
		return c.BinaryPath
	}
	return "cbc"
}

func (c *CBCBackend) logger() *zap.Logger {
	if c.Log != nil {
		return c.Log
	}
	return zap.NewNop()
}

// Solve writes model as an .lp file, invokes cbc against it within a
// dedicated temp directory, and parses the resulting solution file. The
// temp directory is removed on every exit path, including the error path
// (§5's resource-lifecycle requirement).
func (c *CBCBackend) Solve(ctx context.Context, model *ilp.Model, timeLimit time.Duration) (Result, error) {
	dir, err := os.MkdirTemp(c.WorkDir, "xesthora-cbc-")
	if err != nil {
		return Result{}, fmt.Errorf("solve: mkdir temp: %w", err)
	}
	defer os.RemoveAll(dir)

	lpPath := filepath.Join(dir, "model.lp")
	solPath := filepath.Join(dir, "model.sol")

	if err := os.WriteFile(lpPath, []byte(WriteLP(model)), 0o644); err != nil {
		return Result{}, fmt.Errorf("solve: write lp: %w", err)
	}

	args := []string{lpPath}
	if timeLimit > 0 {
		args = append(args, "seconds", strconv.Itoa(int(timeLimit.Seconds())))
	}
	args = append(args, "solve", "solution", solPath)

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	c.logger().Info("cbc invocation finished",
		zap.String("binary", c.binary()),
		zap.Strings("args", args),
		zap.Error(runErr),
	)

	solData, readErr := os.ReadFile(solPath)
	if readErr != nil {
		if runErr != nil {
			return Result{}, fmt.Errorf("solve: cbc failed and produced no solution file: %w (stderr: %s)", runErr, stderr.String())
		}
		return Result{}, fmt.Errorf("solve: read solution file: %w", readErr)
	}

	status, values, objective := parseCBCSolution(solData)
	result := Result{Status: status, Objective: objective, Values: values}

	c.logger().Info("solve finished", zap.String("status", status.String()), zap.Float64("objective", objective))
	return result, nil
}

// WriteLP renders model in CPLEX-LP format, the format CBC accepts
// directly on its command line.
func WriteLP(m *ilp.Model) string {
	var sb strings.Builder

	sb.WriteString("\\ xesthora timetable model\n\n")
	sb.WriteString("Minimize\n obj: ")
	writeTerms(&sb, m.Objective)
	sb.WriteString("\n\n")

	sb.WriteString("Subject To\n")
	for _, c := range m.Constraints {
		sb.WriteString(" ")
		sb.WriteString(c.Name)
		sb.WriteString(": ")
		writeTerms(&sb, c.Terms)
		sb.WriteString(" ")
		sb.WriteString(c.Sense.String())
		sb.WriteString(" ")
		sb.WriteString(formatNum(c.RHS))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	var binaries, generals, bounds []string
	for _, v := range m.Vars() {
		if v.Fixed {
			bounds = append(bounds, fmt.Sprintf(" %s = %s", v.Name, formatNum(v.FixedAt)))
			continue
		}
		switch v.Kind {
		case ilp.Binary:
			binaries = append(binaries, " "+v.Name)
		case ilp.NonNegativeInteger:
			generals = append(generals, " "+v.Name)
			bounds = append(bounds, fmt.Sprintf(" 0 <= %s <= +inf", v.Name))
		}
	}

	if len(bounds) > 0 {
		sb.WriteString("Bounds\n")
		for _, b := range bounds {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if len(binaries) > 0 {
		sb.WriteString("Binary\n")
		for _, b := range binaries {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if len(generals) > 0 {
		sb.WriteString("Generals\n")
		for _, g := range generals {
			sb.WriteString(g)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("End\n")
	return sb.String()
}

func writeTerms(sb *strings.Builder, terms []ilp.Term) {
	if len(terms) == 0 {
		sb.WriteString("0")
		return
	}
	for i, t := range terms {
		if t.Coef >= 0 && i > 0 {
			sb.WriteString(" + ")
		} else if t.Coef < 0 {
			sb.WriteString(" - ")
		}
		coef := math.Abs(t.Coef)
		if coef != 1 {
			sb.WriteString(formatNum(coef))
			sb.WriteString(" ")
		}
		sb.WriteString(t.Var)
	}
}

func formatNum(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseCBCSolution parses CBC's default solution-file format:
//
//	Optimal - objective value 5.00000000
//	   0 x#T1#X#a#Mo#t1              1              0
//	   1 y#X#a#Mo#t1                 1              0
func parseCBCSolution(data []byte) (Status, map[string]float64, float64) {
	values := make(map[string]float64)
	var objective float64
	status := StatusOther

	scanner := bufio.NewScanner(bytes.NewReader(data))
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			status, objective = parseCBCHeader(line)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := fields[1]
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		values[name] = value
	}
	return status, values, objective
}

func parseCBCHeader(line string) (Status, float64) {
	lower := strings.ToLower(line)
	var status Status
	switch {
	case strings.Contains(lower, "optimal"):
		status = StatusOptimal
	case strings.Contains(lower, "infeasible"):
		status = StatusInfeasible
	case strings.Contains(lower, "unbounded"):
		status = StatusUnbounded
	case strings.Contains(lower, "stopped on time"):
		status = StatusTimeLimit
	case strings.Contains(lower, "feasible"):
		status = StatusFeasible
	default:
		status = StatusOther
	}

	var objective float64
	if idx := strings.Index(lower, "objective value"); idx >= 0 {
		fields := strings.Fields(line[idx+len("objective value"):])
		if len(fields) > 0 {
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				objective = v
			}
		}
	}
	return status, objective
}
