package settings

// LayerSettings is the fully resolved, per-layer view of Settings: the base
// snapshot with every matching LayerOverlay folded in, in list order, later
// matches overriding earlier ones field by field. A nil field in an overlay
// means "inherit" — it simply never touches the running value.
type LayerSettings struct {
	Settings
}

// ResolveLayer folds every LayerOverlay in base whose LayerRange contains
// (layerIndex, bottomZ, topZ) into a copy of base, in list order.
func ResolveLayer(base *Settings, layerIndex int, bottomZ, topZ float64) LayerSettings {
	resolved := *base
	for _, ov := range base.LayerOverlays {
		if !ov.Range.Contains(layerIndex, bottomZ, topZ) {
			continue
		}
		applyOverlay(&resolved, ov.Settings)
	}
	return LayerSettings{Settings: resolved}
}

func applyOverlay(dst *Settings, o PartialLayerSettings) {
	if o.LayerHeight != nil {
		dst.LayerHeight = *o.LayerHeight
	}
	if o.ExtrusionWidth != nil {
		dst.ExtrusionWidth = *o.ExtrusionWidth
	}
	if o.NumberOfPerimeters != nil {
		dst.NumberOfPerimeters = *o.NumberOfPerimeters
	}
	if o.TopLayers != nil {
		dst.TopLayers = *o.TopLayers
	}
	if o.BottomLayers != nil {
		dst.BottomLayers = *o.BottomLayers
	}
	if o.InfillPercentage != nil {
		dst.InfillPercentage = *o.InfillPercentage
	}
	if o.InfillOverlapPercent != nil {
		dst.InfillOverlapPercent = *o.InfillOverlapPercent
	}
	if o.InnerPerimetersFirst != nil {
		dst.InnerPerimetersFirst = *o.InnerPerimetersFirst
	}
	if o.LayerShrinkAmount != nil {
		dst.LayerShrinkAmount = o.LayerShrinkAmount
	}
	if o.SolidInfillType != nil {
		dst.SolidInfillType = *o.SolidInfillType
	}
	if o.PartialInfillType != nil {
		dst.PartialInfillType = *o.PartialInfillType
	}
}
