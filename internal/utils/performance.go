package utils

import (
	"fmt"
	"strings"
	"time"
)

// StepTiming holds timing information for a single step
type StepTiming struct {
	Name      string
	StartTime time.Time
	Duration  time.Duration
	SubSteps  []*StepTiming
}

// PerformanceTracker times the phases of one run. Steps may nest; EndStep
// closes the innermost open step.
type PerformanceTracker struct {
	open  []*StepTiming
	steps []*StepTiming
	now   func() time.Time
}

func NewPerformanceTracker() *PerformanceTracker {
	return &PerformanceTracker{now: time.Now}
}

// StartStep begins timing a new step
func (pt *PerformanceTracker) StartStep(name string) {
	step := &StepTiming{
		Name:      name,
		StartTime: pt.now(),
	}

	if n := len(pt.open); n > 0 {
		parent := pt.open[n-1]
		parent.SubSteps = append(parent.SubSteps, step)
	} else {
		pt.steps = append(pt.steps, step)
	}
	pt.open = append(pt.open, step)
}

// EndStep completes timing for the current step
func (pt *PerformanceTracker) EndStep() {
	n := len(pt.open)
	if n == 0 {
		return
	}
	step := pt.open[n-1]
	step.Duration = pt.now().Sub(step.StartTime)
	pt.open = pt.open[:n-1]
}

// Steps returns the top level steps in the order they were started.
func (pt *PerformanceTracker) Steps() []*StepTiming {
	return pt.steps
}

// GenerateReport creates a formatted performance report
func (pt *PerformanceTracker) GenerateReport() string {
	var sb strings.Builder
	sb.WriteString("=== Performance Report ===\n")

	for _, step := range pt.steps {
		writeStepReport(&sb, step, 0)
	}

	return sb.String()
}

func writeStepReport(sb *strings.Builder, step *StepTiming, level int) {
	indent := strings.Repeat("  ", level)
	sb.WriteString(fmt.Sprintf("%s%s: %v\n", indent, step.Name, step.Duration.Round(time.Microsecond)))

	for _, subStep := range step.SubSteps {
		writeStepReport(sb, subStep, level+1)
	}
}
