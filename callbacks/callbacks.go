package callbacks

import (
	"strconv"
	"time"

	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/tracelog"
)

// CalculatedValues is the subset of calc.CalculatedValues the callback
// boundary needs to report — declared here rather than imported so this
// package never depends on calc (calc already depends on command and
// settings; importing calc back would cycle through the orchestrator).
type CalculatedValues struct {
	PlasticVolume    float64
	PlasticLength    float64
	PlasticWeight    float64
	TotalTimeSeconds float64
}

// Callbacks is the orchestrator's progress-reporting boundary (§4.I, §6).
// StateUpdate is called once per named phase transition; HandleSettingsWarning
// once per non-fatal validation finding; Commands once with the final,
// optimized stream just before the pipeline hands it to its Sink;
// HandleCalculatedValues and HandleSliceFinished once each, in that order,
// at the end of a successful run. Implementations are invoked only from
// the orchestration goroutine, serially, between passes — never while a
// pass's internal workpool fan-out is running — so they need no locking
// of their own.
type Callbacks interface {
	StateUpdate(phase string)
	HandleSettingsWarning(warning settings.Warning)
	Commands(cmds []command.Command)
	HandleCalculatedValues(cv CalculatedValues, st *settings.Settings)
	HandleSliceFinished()
}

// Silent discards every callback — the default for library embedding
// where progress reporting is unwanted.
type Silent struct{}

var _ Callbacks = Silent{}

func (Silent) StateUpdate(string)                                           {}
func (Silent) HandleSettingsWarning(settings.Warning)                       {}
func (Silent) Commands([]command.Command)                                   {}
func (Silent) HandleCalculatedValues(CalculatedValues, *settings.Settings) {}
func (Silent) HandleSliceFinished()                                         {}

// Profiling logs a phase name plus the elapsed time since the previous
// StateUpdate call, for diagnosing which pass dominates a slice.
// Mirrors the reference pipeline's ProfilingCallbacks.
type Profiling struct {
	log      *tracelog.Logger
	lastTime time.Time
}

var _ Callbacks = (*Profiling)(nil)

// NewProfiling builds a Profiling callback writing through log (or
// tracelog.Default() if log is nil).
func NewProfiling(log *tracelog.Logger) *Profiling {
	if log == nil {
		log = tracelog.Default()
	}
	return &Profiling{log: log, lastTime: time.Now()}
}

func (p *Profiling) StateUpdate(phase string) {
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	p.lastTime = now
	p.log.Info(phase, "elapsed_ms", strconv.FormatInt(elapsed.Milliseconds(), 10))
}

func (p *Profiling) Commands(cmds []command.Command) {
	p.log.Debug("commands generated", "count", strconv.Itoa(len(cmds)))
}

func (p *Profiling) HandleSettingsWarning(warning settings.Warning) {
	p.log.Warn(warning.String())
}

func (p *Profiling) HandleCalculatedValues(cv CalculatedValues, st *settings.Settings) {
	p.log.Info("calculated values",
		"plastic_length_mm", strconv.FormatFloat(cv.PlasticLength, 'f', 2, 64),
		"plastic_weight_g", strconv.FormatFloat(cv.PlasticWeight, 'f', 2, 64),
		"total_time_s", strconv.FormatFloat(cv.TotalTimeSeconds, 'f', 2, 64),
	)
}

func (p *Profiling) HandleSliceFinished() {
	p.log.Info("slice finished")
}
