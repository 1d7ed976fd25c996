package settings_test

import (
	"testing"

	"github.com/arcweld/slicecore/settings"
	"github.com/stretchr/testify/require"
)

func baseSettings() *settings.Settings {
	s := settings.NewSettings(0.2, 0.4, 200, 200, 200)
	s.FilamentDiameter = 1.75
	return s
}

func TestValidateRejectsNonPositiveDimension(t *testing.T) {
	s := baseSettings()
	s.PrintX = 0
	_, err := settings.Validate(s)
	require.Error(t, err)
}

func TestValidateWarnsOnLayerHeightOutOfRange(t *testing.T) {
	s := baseSettings()
	s.LayerHeight = 0.01
	warnings, err := settings.Validate(s)
	require.NoError(t, err)
	require.Contains(t, kinds(warnings), settings.LayerHeightOutOfRange)
}

func TestValidateWarnsOnAccelerationTooLow(t *testing.T) {
	s := baseSettings()
	s.PrintX, s.PrintY = 200, 200
	s.Speed.Infill = 200
	s.Acceleration.Infill = 100 // 200^2/(2*100) = 200, not strictly greater than 200
	warnings, err := settings.Validate(s)
	require.NoError(t, err)
	require.NotContains(t, kinds(warnings), settings.AccelerationTooLow)

	s.Speed.Infill = 201
	warnings, err = settings.Validate(s)
	require.NoError(t, err)
	require.Contains(t, kinds(warnings), settings.AccelerationTooLow)
}

func kinds(ws []settings.Warning) []settings.WarningKind {
	out := make([]settings.WarningKind, len(ws))
	for i, w := range ws {
		out[i] = w.Kind
	}
	return out
}

func TestResolveLayerAppliesMatchingOverlay(t *testing.T) {
	s := baseSettings()
	lh := 0.1
	s.LayerOverlays = append(s.LayerOverlays, settings.LayerOverlay{
		Range:    settings.LayerRange{Kind: settings.SingleLayer, Index: 5},
		Settings: settings.PartialLayerSettings{LayerHeight: &lh},
	})

	resolved := settings.ResolveLayer(s, 5, 1.0, 1.1)
	require.Equal(t, 0.1, resolved.LayerHeight)

	resolvedOther := settings.ResolveLayer(s, 6, 1.1, 1.2)
	require.Equal(t, 0.2, resolvedOther.LayerHeight)
}
