package product

// Closed attribute vocabularies for catalog filtering. Unknown values in a
// filter simply match nothing; writes go through IsValid.

type Metal string

const (
	MetalGold     Metal = "gold"
	MetalSilver   Metal = "silver"
	MetalPlatinum Metal = "platinum"
)

func (m Metal) String() string { return string(m) }

func (m Metal) IsValid() bool {
	switch m {
	case MetalGold, MetalSilver, MetalPlatinum:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	default:
		return false
	}
}

type Stone string

const (
	StoneDiamond Stone = "diamond"
	StoneRuby    Stone = "ruby"
	StoneEmerald Stone = "emerald"
	StoneNone    Stone = "none"
)

func (s Stone) String() string { return string(s) }

func (s Stone) IsValid() bool {
	switch s {
	case StoneDiamond, StoneRuby, StoneEmerald, StoneNone:
		return true
	default:
		return false
	}
}

type Color string

const (
	ColorYellow Color = "yellow"
	ColorWhite  Color = "white"
	ColorRose   Color = "rose"
	ColorBlack  Color = "black"
)

func (c Color) String() string { return string(c) }

func (c Color) IsValid() bool {
	switch c {
	case ColorYellow, ColorWhite, ColorRose, ColorBlack:
		return true
	default:
		return false
	}
}
