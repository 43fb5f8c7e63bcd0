package traits

import "slices"

// AvatarMode selects which paint routine renders a seed.
type AvatarMode uint8

const (
	ModeCreature AvatarMode = iota
	ModeCloud
	ModeFlower
	ModeRepeating
	ModeSpace
)

var avatarModeNames = [...]string{"creature", "cloud", "flower", "repeating", "space"}

func (m AvatarMode) String() string { return enumName(avatarModeNames[:], int(m)) }

// SymmetryAxis is the axis a symmetric creature is mirrored across.
type SymmetryAxis uint8

const (
	AxisVertical SymmetryAxis = iota
	AxisHorizontal
)

var symmetryAxisNames = [...]string{"vertical", "horizontal"}

func (a SymmetryAxis) String() string { return enumName(symmetryAxisNames[:], int(a)) }

// CreatureType is a coarse flavor decided for tier 4 and up.
type CreatureType uint8

const (
	CreatureAnimal CreatureType = iota
	CreatureAlien
	CreatureOther
)

var creatureTypeNames = [...]string{"animal", "alien", "other"}

func (c CreatureType) String() string { return enumName(creatureTypeNames[:], int(c)) }

// ShapeMask is the outline used for the head and the final frame crop.
type ShapeMask uint8

const (
	ShapeRect ShapeMask = iota
	ShapeCircle
	ShapeEllipse
	ShapeTriangle
	ShapePentagon
	ShapeHexagon
	ShapeSeptagon
	ShapeOctagon
)

var shapeMaskNames = [...]string{"rect", "circle", "ellipse", "triangle", "pentagon", "hexagon", "septagon", "octagon"}

func (s ShapeMask) String() string { return enumName(shapeMaskNames[:], int(s)) }

// Sides returns the polygon side count, or 0 for non-polygon masks.
func (s ShapeMask) Sides() int {
	switch s {
	case ShapeTriangle:
		return 3
	case ShapePentagon:
		return 5
	case ShapeHexagon:
		return 6
	case ShapeSeptagon:
		return 7
	case ShapeOctagon:
		return 8
	default:
		return 0
	}
}

var polygonShapes = [...]ShapeMask{ShapeTriangle, ShapePentagon, ShapeHexagon, ShapeSeptagon, ShapeOctagon}

// EyeShape enumerates the eight eye stamps.
type EyeShape uint8

const (
	EyeSquare EyeShape = iota
	EyeRound
	EyeDot
	EyeTall
	EyeWide
	EyeDiamond
	EyeCross
	EyeSlit
)

// EyeShapeCount is the number of eye shapes a seed may pick from.
const EyeShapeCount = 8

var eyeShapeNames = [...]string{"square", "round", "dot", "tall", "wide", "diamond", "cross", "slit"}

func (e EyeShape) String() string { return enumName(eyeShapeNames[:], int(e)) }

// MouthStyle is the mouth drawing variant.
type MouthStyle uint8

const (
	MouthNeutral MouthStyle = iota
	MouthOpen
	MouthSmiling
)

var mouthStyleNames = [...]string{"neutral", "open", "smiling"}

func (m MouthStyle) String() string { return enumName(mouthStyleNames[:], int(m)) }

// AppendageStyle controls how limbs are drawn.
type AppendageStyle uint8

const (
	AppendageTentacle AppendageStyle = iota
	AppendageArm
	AppendageLeg
)

var appendageStyleNames = [...]string{"tentacle", "arm", "leg"}

func (a AppendageStyle) String() string { return enumName(appendageStyleNames[:], int(a)) }

var appendageCounts = [...]int{4, 6, 8}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// Aspect holds the two ellipse scale factors.
type Aspect struct {
	RX float64
	RY float64
}

// NoseParams are auxiliary nose values. They are resolved for every seed
// whether or not a nose is drawn.
type NoseParams struct {
	Width  int
	Height int
	Offset int
	Style  int
}

// CreatureConfig is the full set of decisions for one seed.
type CreatureConfig struct {
	Tier                int
	Mode                AvatarMode
	Axis                SymmetryAxis
	PaletteIndex        int
	Palette             []string
	HasOpaqueBackground bool
	Type                CreatureType

	SymmetricVertical bool
	SymmetricDiagonal bool
	UpsideDown        bool

	Shape  ShapeMask
	Aspect Aspect

	HasEyes    bool
	Eye        EyeShape
	HasMouth   bool
	Mouth      MouthStyle
	HasNose    bool
	Nose       NoseParams
	HasBody    bool
	HasHair    bool
	HasEyebrow bool
	HasBeard   bool
	HasEars    bool
	HasHorn    bool
	HasAntlers bool

	HasAppendages   bool
	AppendageCount  int
	AppendageStyle  AppendageStyle
	AppendageRadial bool
}

// ColorCount returns the number of palette slots.
func (c CreatureConfig) ColorCount() int { return len(c.Palette) }

// Equal reports whether two configs match field for field.
func (c CreatureConfig) Equal(o CreatureConfig) bool {
	return slices.Equal(c.Palette, o.Palette) &&
		c.Tier == o.Tier &&
		c.Mode == o.Mode &&
		c.Axis == o.Axis &&
		c.PaletteIndex == o.PaletteIndex &&
		c.HasOpaqueBackground == o.HasOpaqueBackground &&
		c.Type == o.Type &&
		c.SymmetricVertical == o.SymmetricVertical &&
		c.SymmetricDiagonal == o.SymmetricDiagonal &&
		c.UpsideDown == o.UpsideDown &&
		c.Shape == o.Shape &&
		c.Aspect == o.Aspect &&
		c.HasEyes == o.HasEyes &&
		c.Eye == o.Eye &&
		c.HasMouth == o.HasMouth &&
		c.Mouth == o.Mouth &&
		c.HasNose == o.HasNose &&
		c.Nose == o.Nose &&
		c.HasBody == o.HasBody &&
		c.HasHair == o.HasHair &&
		c.HasEyebrow == o.HasEyebrow &&
		c.HasBeard == o.HasBeard &&
		c.HasEars == o.HasEars &&
		c.HasHorn == o.HasHorn &&
		c.HasAntlers == o.HasAntlers &&
		c.HasAppendages == o.HasAppendages &&
		c.AppendageCount == o.AppendageCount &&
		c.AppendageStyle == o.AppendageStyle &&
		c.AppendageRadial == o.AppendageRadial
}
