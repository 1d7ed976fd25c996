package settings

import (
	"fmt"
	"math"
)

// WarningKind names one of the validation findings that are reported but
// non-fatal — the pipeline forwards these to Callbacks.HandleSettingsWarning
// and continues.
type WarningKind int

const (
	LayerHeightOutOfRange WarningKind = iota
	ExtrusionWidthOutOfRange
	ExtruderTempOutOfRange
	AccelerationTooLow
)

// Warning is one non-fatal validation finding: which rule fired, which
// field it concerns, and the offending value.
type Warning struct {
	Kind  WarningKind
	Field string
	Value float64
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s=%g out of recommended range", warningKindName(w.Kind), w.Field, w.Value)
}

func warningKindName(k WarningKind) string {
	switch k {
	case LayerHeightOutOfRange:
		return "LayerHeightOutOfRange"
	case ExtrusionWidthOutOfRange:
		return "ExtrusionWidthOutOfRange"
	case ExtruderTempOutOfRange:
		return "ExtruderTempOutOfRange"
	case AccelerationTooLow:
		return "AccelerationTooLow"
	default:
		return "UnknownWarning"
	}
}

// Error is a fatal settings violation: a value that cannot be resolved to
// a workable configuration rather than merely a suboptimal one. It carries
// the offending field and value so callers (and slicererr.SettingsError)
// can report precisely what failed.
type Error struct {
	Field string
	Value float64
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("settings: %s (%s=%g)", e.Msg, e.Field, e.Value)
}

// Validate checks s against the rules §6 lists, returning every non-fatal
// Warning found, or, at the first fatal Error (strictly-positive
// violations and the skirt/brim overlap rule — everything else only ever
// warns), that Error together with the warnings found before it.
func Validate(s *Settings) ([]Warning, error) {
	var warnings []Warning

	for field, v := range map[string]float64{
		"layer_height":     s.LayerHeight,
		"nozzle_diameter":  s.NozzleDiameter,
		"print_x":          s.PrintX,
		"print_y":          s.PrintY,
		"print_z":          s.PrintZ,
		"filament_diameter": s.FilamentDiameter,
	} {
		if v <= 0 {
			return warnings, &Error{Field: field, Value: v, Msg: "must be strictly positive"}
		}
	}

	if lo, hi := 0.2*s.NozzleDiameter, 0.8*s.NozzleDiameter; s.LayerHeight < lo || s.LayerHeight > hi {
		warnings = append(warnings, Warning{Kind: LayerHeightOutOfRange, Field: "layer_height", Value: s.LayerHeight})
	}

	for _, field := range []struct {
		name string
		v    float64
	}{
		{"extrusion_width.top_solid_infill", s.ExtrusionWidth.TopSolidInfill},
		{"extrusion_width.solid_infill", s.ExtrusionWidth.SolidInfill},
		{"extrusion_width.infill", s.ExtrusionWidth.Infill},
		{"extrusion_width.exterior_surface_perimeter", s.ExtrusionWidth.ExteriorSurfacePerimeter},
		{"extrusion_width.interior_surface_perimeter", s.ExtrusionWidth.InteriorSurfacePerimeter},
		{"extrusion_width.exterior_inner_perimeter", s.ExtrusionWidth.ExteriorInnerPerimeter},
		{"extrusion_width.interior_inner_perimeter", s.ExtrusionWidth.InteriorInnerPerimeter},
		{"extrusion_width.bridging", s.ExtrusionWidth.Bridging},
		{"extrusion_width.support", s.ExtrusionWidth.Support},
	} {
		if field.v <= 0 {
			continue // A channel left at zero is skipped: it gets no range warning and is not fatal.
		}
		lo, hi := 0.6*s.NozzleDiameter, 2.0*s.NozzleDiameter
		if field.v < lo || field.v > hi {
			warnings = append(warnings, Warning{Kind: ExtrusionWidthOutOfRange, Field: field.name, Value: field.v})
		}
	}

	if s.Skirt.Enabled && s.BrimWidth != nil && s.Skirt.Distance <= *s.BrimWidth {
		return warnings, &Error{Field: "skirt.distance", Value: s.Skirt.Distance, Msg: "skirt distance must exceed brim width"}
	}

	if s.ExtruderTemp < 140 || s.ExtruderTemp > 260 {
		warnings = append(warnings, Warning{Kind: ExtruderTempOutOfRange, Field: "extruder_temp", Value: s.ExtruderTemp})
	}

	minBed := math.Min(s.PrintX, s.PrintY)
	check := func(name string, speed, accel float64) {
		if accel <= 0 {
			return
		}
		if speed*speed/(2*accel) > minBed {
			warnings = append(warnings, Warning{Kind: AccelerationTooLow, Field: name, Value: accel})
		}
	}
	check("acceleration.top_solid_infill", s.Speed.TopSolidInfill, s.Acceleration.TopSolidInfill)
	check("acceleration.solid_infill", s.Speed.SolidInfill, s.Acceleration.SolidInfill)
	check("acceleration.infill", s.Speed.Infill, s.Acceleration.Infill)
	check("acceleration.exterior_surface_perimeter", s.Speed.ExteriorSurfacePerimeter, s.Acceleration.ExteriorSurfacePerimeter)
	check("acceleration.interior_surface_perimeter", s.Speed.InteriorSurfacePerimeter, s.Acceleration.InteriorSurfacePerimeter)
	check("acceleration.exterior_inner_perimeter", s.Speed.ExteriorInnerPerimeter, s.Acceleration.ExteriorInnerPerimeter)
	check("acceleration.interior_inner_perimeter", s.Speed.InteriorInnerPerimeter, s.Acceleration.InteriorInnerPerimeter)
	check("acceleration.bridging", s.Speed.Bridging, s.Acceleration.Bridging)
	check("acceleration.support", s.Speed.Support, s.Acceleration.Support)
	check("acceleration.travel", s.Speed.Travel, s.Acceleration.Travel)

	return warnings, nil
}
