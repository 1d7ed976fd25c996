package settings

// MachineLimits bundles the per-axis feedrate/acceleration/jerk ceilings
// and the extruding/travel/retracting acceleration and minimum-feedrate
// floors from §6's "Machine limits" group.
type MachineLimits struct {
	MaxFeedrateX, MaxFeedrateY, MaxFeedrateZ, MaxFeedrateE       float64
	MaxAccelerationX, MaxAccelerationY, MaxAccelerationZ         float64
	MaxJerkX, MaxJerkY, MaxJerkZ, MaxJerkE                       float64
	ExtrudingAcceleration, TravelAcceleration, RetractAcceleration float64
	MinExtrudingFeedrate, MinTravelFeedrate                      float64
}

// Instructions holds the templated g-code snippets the core passes through
// unevaluated; an external text templater is responsible for rendering
// them (§6, MacroParseError is raised there, not here).
type Instructions struct {
	Starting, Ending               string
	BeforeLayerChange, AfterLayerChange string
	ObjectChange                   string
}

// Settings is the frozen, fully-merged configuration snapshot the pipeline
// broadcasts read-only to every pass.
type Settings struct {
	// Geometry
	LayerHeight    float64
	NozzleDiameter float64
	ExtrusionWidth PerMoveType
	PrintX, PrintY, PrintZ float64

	// Structure
	NumberOfPerimeters   int
	TopLayers            int
	BottomLayers         int
	InfillPercentage     float64
	InfillOverlapPercent float64
	InnerPerimetersFirst bool
	LayerShrinkAmount    *float64
	BrimWidth            *float64
	SolidInfillType      InfillPattern
	PartialInfillType    InfillPattern

	Support   Support
	Skirt     Skirt
	Lightning LightningTuning

	// Filament
	FilamentDiameter float64
	FilamentDensity  float64
	FilamentCost     float64
	ExtruderTemp     float64
	BedTemp          float64

	// Fan
	FanSpeed             float64
	DisableFanForLayers  int
	SlowDownThreshold    float64
	MinPrintSpeed        float64

	// Retraction
	RetractLength          float64
	RetractLiftZ           float64
	RetractSpeed           float64
	MinimumRetractDistance float64
	RetractionWipe         *RetractWipe

	// Motion
	Speed        PerMoveType
	Acceleration PerMoveType

	Machine MachineLimits

	LayerOverlays []LayerOverlay
	Instructions  Instructions
}

// Option configures a Settings during construction. NewSettings applies
// safe, spec-consistent zero values first so an Option only needs to touch
// the fields it cares about.
type Option func(*Settings)

// WithSupport enables support generation with the given tunables.
func WithSupport(s Support) Option {
	return func(cfg *Settings) { s.Enabled = true; cfg.Support = s }
}

// WithSkirt enables skirt generation with the given tunables.
func WithSkirt(s Skirt) Option {
	return func(cfg *Settings) { s.Enabled = true; cfg.Skirt = s }
}

// WithLayerOverlay appends one per-layer overlay.
func WithLayerOverlay(o LayerOverlay) Option {
	return func(cfg *Settings) { cfg.LayerOverlays = append(cfg.LayerOverlays, o) }
}

// WithRetractionWipe enables the optional wipe-after-retract move.
func WithRetractionWipe(w RetractWipe) Option {
	return func(cfg *Settings) { cfg.RetractionWipe = &w }
}

// WithLightning overrides the lightning-infill reach/coalesce tunables;
// unset fields keep NewSettings' zero value, which LightningFill resolves
// to its built-in defaults (§9 Open Questions).
func WithLightning(l LightningTuning) Option {
	return func(cfg *Settings) { cfg.Lightning = l }
}

// NewSettings builds a Settings from its required geometry/structure
// fields plus any number of Options for the optional groups.
func NewSettings(layerHeight, nozzleDiameter, printX, printY, printZ float64, opts ...Option) *Settings {
	cfg := &Settings{
		LayerHeight:          layerHeight,
		NozzleDiameter:       nozzleDiameter,
		PrintX:               printX,
		PrintY:               printY,
		PrintZ:               printZ,
		NumberOfPerimeters:   2,
		TopLayers:            3,
		BottomLayers:         3,
		InnerPerimetersFirst: true,
		MinPrintSpeed:        5,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
