package traits

import "fonsters/pkg/core"

// Probabilities and gates. The segment ids used by Resolve are part of the
// output contract: renaming one changes every creature derived from it.
const (
	modeBandCloud     = 0.01
	modeBandFlower    = 0.02
	modeBandRepeating = 0.03
	modeBandSpace     = 0.04

	pHorizontalAxis    = 0.04
	pOpaqueBackground  = 0.11
	pSymVertical       = 0.98
	pSymDiagonal       = 0.09
	pUpsideDown        = 0.06
	pRoundMask         = 0.35
	pPolygonMask       = 0.5
	pEyes              = 0.95
	pMouth             = 0.55
	pNose              = 0.23
	pBody              = 0.17
	pHair              = 0.04
	pEyebrows          = 0.38
	pBeard             = 0.26
	pEars              = 0.07
	pHorn              = 0.18
	pAntlers           = 0.12
	pAppendages        = 0.55
	pAppendageRadial   = 0.6
	aspectMin          = 0.85
	aspectSpan         = 0.3
	tierCount          = 5
	tierFullFeatures   = 4
	tierFaceFeatures   = 3
	tierSymmetricForce = 2
)

// Resolve derives the creature config for seed. Steps run in a fixed order
// since later decisions read earlier ones (palette length depends on tier).
func Resolve(seed core.Seed) CreatureConfig {
	var c CreatureConfig

	c.Tier = seed.Pick("complexity_tier", tierCount) + 1
	full := c.Tier >= tierFullFeatures
	face := c.Tier >= tierFaceFeatures

	c.Mode = resolveMode(seed.Hash("avatar_mode"))

	if seed.Roll("symmetry_axis", pHorizontalAxis) {
		c.Axis = AxisHorizontal
	}

	c.PaletteIndex = seed.Pick("palette", PaletteCount)
	c.Palette = RawPalette(c.PaletteIndex)[:numColors(seed, c.Tier)]

	c.HasOpaqueBackground = full && seed.Roll("opaque_bg", pOpaqueBackground)

	if full {
		switch u := seed.Hash("creature_type"); {
		case u < 0.7:
			c.Type = CreatureAnimal
		case u < 0.9:
			c.Type = CreatureAlien
		default:
			c.Type = CreatureOther
		}
	}

	if c.Tier <= tierSymmetricForce {
		c.SymmetricVertical = true
	} else {
		c.SymmetricVertical = seed.Roll("sym_vertical", pSymVertical)
	}
	c.SymmetricDiagonal = full && seed.Roll("sym_diagonal", pSymDiagonal)
	c.UpsideDown = full && seed.Roll("upside_down", pUpsideDown)

	c.Shape = resolveShape(seed, c.Tier)
	c.Aspect = Aspect{
		RX: aspectMin + seed.Hash("ellipse_rx")*aspectSpan,
		RY: aspectMin + seed.Hash("ellipse_ry")*aspectSpan,
	}

	c.HasEyes = face && seed.Roll("eyes", pEyes)
	if c.HasEyes {
		c.Eye = EyeShape(seed.Pick("eye_shape", EyeShapeCount))
	}

	c.HasMouth = face && seed.Roll("mouth", pMouth)
	if full {
		switch u := seed.Hash("mouth_style"); {
		case u < 0.4:
			c.Mouth = MouthNeutral
		case u < 0.6:
			c.Mouth = MouthOpen
		default:
			c.Mouth = MouthSmiling
		}
	}

	c.HasNose = full && seed.Roll("nose", pNose)
	c.Nose = NoseParams{
		Width:  seed.Pick("nose_width", 3),
		Height: seed.Pick("nose_height", 3),
		Offset: seed.Pick("nose_offset", 3),
		Style:  seed.Pick("nose_style", 3),
	}

	c.HasBody = full && seed.Roll("body", pBody)
	c.HasHair = full && seed.Roll("hair", pHair)
	c.HasEyebrow = full && seed.Roll("eyebrows", pEyebrows)
	c.HasBeard = full && seed.Roll("beard", pBeard)
	c.HasEars = full && seed.Roll("ears", pEars)
	c.HasHorn = full && seed.Roll("horn", pHorn)
	c.HasAntlers = full && seed.Roll("antlers", pAntlers)

	c.HasAppendages = face && seed.Roll("appendages", pAppendages)
	c.AppendageCount = 4
	c.AppendageStyle = AppendageArm
	if c.HasAppendages {
		c.AppendageCount = appendageCounts[seed.Pick("appendage_count", len(appendageCounts))]
		c.AppendageStyle = AppendageStyle(seed.Pick("appendage_style", 3))
		c.AppendageRadial = seed.Roll("appendage_radial", pAppendageRadial)
	}

	return c
}

// ResolveString hashes s and resolves its config.
func ResolveString(s string) CreatureConfig {
	return Resolve(core.NewSeed(s))
}

func resolveMode(u float64) AvatarMode {
	switch {
	case u < modeBandCloud:
		return ModeCloud
	case u < modeBandFlower:
		return ModeFlower
	case u < modeBandRepeating:
		return ModeRepeating
	case u < modeBandSpace:
		return ModeSpace
	default:
		return ModeCreature
	}
}

func numColors(seed core.Seed, tier int) int {
	switch {
	case tier <= 3:
		return 2
	case tier == 4:
		return 3
	default:
		return 4 + seed.Pick("num_colors", 3)
	}
}

func resolveShape(seed core.Seed, tier int) ShapeMask {
	switch {
	case tier == 1:
		return ShapeCircle
	case tier < tierFullFeatures:
		return ShapeRect
	case seed.Roll("shape_mask", pRoundMask):
		if seed.Pick("shape_kind", 2) == 0 {
			return ShapeCircle
		}
		return ShapeEllipse
	case seed.Roll("shape_polygon", pPolygonMask):
		return polygonShapes[seed.Pick("shape_poly_kind", len(polygonShapes))]
	default:
		return ShapeRect
	}
}
