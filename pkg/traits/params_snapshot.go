package traits

import (
	"strconv"
	"strings"

	"fonsters/pkg/core"
)

// Parameters groups the resolved traits for display in the viewer HUD and the
// CLI trait table.
func (c CreatureConfig) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Avatar",
			Params: []core.Parameter{
				intParam("tier", "Tier", c.Tier),
				enumParam("mode", "Mode", c.Mode.String()),
				enumParam("type", "Creature type", c.Type.String()),
				intParam("palette", "Palette", c.PaletteIndex),
				enumParam("colors", "Colors", strings.Join(c.Palette, " ")),
				boolParam("opaque_bg", "Opaque background", c.HasOpaqueBackground),
			},
		},
		{
			Name: "Shape",
			Params: []core.Parameter{
				enumParam("shape", "Shape mask", c.Shape.String()),
				floatParam("aspect_rx", "Ellipse rx", c.Aspect.RX),
				floatParam("aspect_ry", "Ellipse ry", c.Aspect.RY),
				enumParam("axis", "Symmetry axis", c.Axis.String()),
				boolParam("sym_vertical", "Symmetric", c.SymmetricVertical),
				boolParam("sym_diagonal", "Diagonal", c.SymmetricDiagonal),
				boolParam("upside_down", "Upside down", c.UpsideDown),
			},
		},
		{
			Name: "Face",
			Params: []core.Parameter{
				boolParam("eyes", "Eyes", c.HasEyes),
				enumParam("eye_shape", "Eye shape", c.Eye.String()),
				boolParam("mouth", "Mouth", c.HasMouth),
				enumParam("mouth_style", "Mouth style", c.Mouth.String()),
				boolParam("nose", "Nose", c.HasNose),
				boolParam("eyebrows", "Eyebrows", c.HasEyebrow),
				boolParam("beard", "Beard", c.HasBeard),
			},
		},
		{
			Name: "Extras",
			Params: []core.Parameter{
				boolParam("body", "Body", c.HasBody),
				boolParam("hair", "Hair", c.HasHair),
				boolParam("ears", "Ears", c.HasEars),
				boolParam("horn", "Horn", c.HasHorn),
				boolParam("antlers", "Antlers", c.HasAntlers),
			},
		},
		{
			Name: "Appendages",
			Params: []core.Parameter{
				boolParam("appendages", "Appendages", c.HasAppendages),
				intParam("appendage_count", "Count", c.AppendageCount),
				enumParam("appendage_style", "Style", c.AppendageStyle.String()),
				boolParam("appendage_radial", "Radial", c.AppendageRadial),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func enumParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeEnum,
		Value: value,
	}
}
