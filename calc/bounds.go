package calc

import (
	"github.com/arcweld/slicecore/command"
	"github.com/arcweld/slicecore/geom"
	"github.com/arcweld/slicecore/settings"
	"github.com/arcweld/slicecore/slicererr"
	"github.com/paulmach/orb"
)

// CheckModelBounds verifies that every mesh's AABB lies within
// [0,print_x]x[0,print_y]x[0,print_z] (§4.H), returning a *slicererr.
// BoundsError naming the first axis that fails for the first mesh that
// fails it.
func CheckModelBounds(meshVertices [][]geom.Vertex, st *settings.Settings) error {
	for _, vertices := range meshVertices {
		if len(vertices) == 0 {
			continue
		}
		box := geom.NewAABB(vertices[0])
		for _, v := range vertices[1:] {
			box = box.Extend(v)
		}
		if err := checkBox(box, st, "mesh"); err != nil {
			return err
		}
	}
	return nil
}

func checkBox(box geom.AABB, st *settings.Settings, subject string) error {
	if box.Min.X < 0 || box.Max.X > st.PrintX {
		return &slicererr.BoundsError{Axis: slicererr.AxisX, Value: outOfRangeValue(box.Min.X, box.Max.X, 0, st.PrintX), Limit: st.PrintX, Subject: subject}
	}
	if box.Min.Y < 0 || box.Max.Y > st.PrintY {
		return &slicererr.BoundsError{Axis: slicererr.AxisY, Value: outOfRangeValue(box.Min.Y, box.Max.Y, 0, st.PrintY), Limit: st.PrintY, Subject: subject}
	}
	if box.Min.Z < 0 || box.Max.Z > st.PrintZ {
		return &slicererr.BoundsError{Axis: slicererr.AxisZ, Value: outOfRangeValue(box.Min.Z, box.Max.Z, 0, st.PrintZ), Limit: st.PrintZ, Subject: subject}
	}
	return nil
}

func outOfRangeValue(lo, hi, wantLo, wantHi float64) float64 {
	if lo < wantLo {
		return lo
	}
	return hi
}

// CheckMovesBounds verifies that every motion endpoint in cmds lies within
// the print volume's X/Y extent (Z is checked via LayerChange heights)
// after the plotter has assembled the final move list (§4.H).
func CheckMovesBounds(cmds []command.Command, st *settings.Settings) error {
	currentZ := 0.0
	for _, c := range cmds {
		switch c.Kind {
		case command.LayerChangeKind:
			currentZ = c.Z
			if err := checkPointZ(currentZ, st); err != nil {
				return err
			}
		case command.MoveToKind:
			if err := checkPointXY(c.End, st); err != nil {
				return err
			}
		case command.MoveAndExtrudeKind, command.ArcKind:
			if err := checkPointXY(c.Start, st); err != nil {
				return err
			}
			if err := checkPointXY(c.End, st); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkPointXY(p orb.Point, st *settings.Settings) error {
	if p.X() < 0 || p.X() > st.PrintX {
		return &slicererr.BoundsError{Axis: slicererr.AxisX, Value: p.X(), Limit: st.PrintX, Subject: "move"}
	}
	if p.Y() < 0 || p.Y() > st.PrintY {
		return &slicererr.BoundsError{Axis: slicererr.AxisY, Value: p.Y(), Limit: st.PrintY, Subject: "move"}
	}
	return nil
}

func checkPointZ(z float64, st *settings.Settings) error {
	if z < 0 || z > st.PrintZ {
		return &slicererr.BoundsError{Axis: slicererr.AxisZ, Value: z, Limit: st.PrintZ, Subject: "move"}
	}
	return nil
}
