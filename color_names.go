package gorast

// The CSS named colors, usable directly and matched (case-insensitively)
// by FromHTML.
var (
	AliceBlue            = NewColor(0xF0, 0xF8, 0xFF, 0xFF)
	AntiqueWhite         = NewColor(0xFA, 0xEB, 0xD7, 0xFF)
	Aqua                 = NewColor(0x00, 0xFF, 0xFF, 0xFF)
	AquaMarine           = NewColor(0x7F, 0xFF, 0xD4, 0xFF)
	Azure                = NewColor(0xF0, 0xFF, 0xFF, 0xFF)
	Beige                = NewColor(0xF5, 0xF5, 0xDC, 0xFF)
	Bisque               = NewColor(0xFF, 0xE4, 0xC4, 0xFF)
	Black                = NewColor(0x00, 0x00, 0x00, 0xFF)
	BlanchedAlmond       = NewColor(0xFF, 0xEB, 0xCD, 0xFF)
	Blue                 = NewColor(0x00, 0x00, 0xFF, 0xFF)
	BlueViolet           = NewColor(0x8A, 0x2B, 0xE2, 0xFF)
	Brown                = NewColor(0xA5, 0x2A, 0x2A, 0xFF)
	BurlyWood            = NewColor(0xDE, 0xB8, 0x87, 0xFF)
	CadetBlue            = NewColor(0x5F, 0x9E, 0xA0, 0xFF)
	Chartreuse           = NewColor(0x7F, 0xFF, 0x00, 0xFF)
	Chocolate            = NewColor(0xD2, 0x69, 0x1E, 0xFF)
	Coral                = NewColor(0xFF, 0x7F, 0x50, 0xFF)
	CornflowerBlue       = NewColor(0x64, 0x95, 0xED, 0xFF)
	Cornsilk             = NewColor(0xFF, 0xF8, 0xDC, 0xFF)
	Crimson              = NewColor(0xDC, 0x14, 0x3C, 0xFF)
	Cyan                 = NewColor(0x00, 0xFF, 0xFF, 0xFF)
	DarkBlue             = NewColor(0x00, 0x00, 0x8B, 0xFF)
	DarkCyan             = NewColor(0x00, 0x8B, 0x8B, 0xFF)
	DarkGoldenRod        = NewColor(0xB8, 0x86, 0x0B, 0xFF)
	DarkGray             = NewColor(0xA9, 0xA9, 0xA9, 0xFF)
	DarkGrey             = NewColor(0xA9, 0xA9, 0xA9, 0xFF)
	DarkGreen            = NewColor(0x00, 0x64, 0x00, 0xFF)
	DarkKhaki            = NewColor(0xBD, 0xB7, 0x6B, 0xFF)
	DarkMagenta          = NewColor(0x8B, 0x00, 0x8B, 0xFF)
	DarkOliveGreen       = NewColor(0x55, 0x6B, 0x2F, 0xFF)
	DarkOrange           = NewColor(0xFF, 0x8C, 0x00, 0xFF)
	DarkOrchid           = NewColor(0x99, 0x32, 0xCC, 0xFF)
	DarkRed              = NewColor(0x8B, 0x00, 0x00, 0xFF)
	DarkSalmon           = NewColor(0xE9, 0x96, 0x7A, 0xFF)
	DarkSeaGreen         = NewColor(0x8F, 0xBC, 0x8F, 0xFF)
	DarkSlateBlue        = NewColor(0x48, 0x3D, 0x8B, 0xFF)
	DarkSlateGray        = NewColor(0x2F, 0x4F, 0x4F, 0xFF)
	DarkSlateGrey        = NewColor(0x2F, 0x4F, 0x4F, 0xFF)
	DarkTurquoise        = NewColor(0x00, 0xCE, 0xD1, 0xFF)
	DarkViolet           = NewColor(0x94, 0x00, 0xD3, 0xFF)
	DeepPink             = NewColor(0xFF, 0x14, 0x93, 0xFF)
	DeepSkyBlue          = NewColor(0x00, 0xBF, 0xFF, 0xFF)
	DimGray              = NewColor(0x69, 0x69, 0x69, 0xFF)
	DimGrey              = NewColor(0x69, 0x69, 0x69, 0xFF)
	DodgerBlue           = NewColor(0x1E, 0x90, 0xFF, 0xFF)
	FireBrick            = NewColor(0xB2, 0x22, 0x22, 0xFF)
	FloralWhite          = NewColor(0xFF, 0xFA, 0xF0, 0xFF)
	ForestGreen          = NewColor(0x22, 0x8B, 0x22, 0xFF)
	Fuchsia              = NewColor(0xFF, 0x00, 0xFF, 0xFF)
	Gainsboro            = NewColor(0xDC, 0xDC, 0xDC, 0xFF)
	GhostWhite           = NewColor(0xF8, 0xF8, 0xFF, 0xFF)
	Gold                 = NewColor(0xFF, 0xD7, 0x00, 0xFF)
	GoldenRod            = NewColor(0xDA, 0xA5, 0x20, 0xFF)
	Gray                 = NewColor(0x80, 0x80, 0x80, 0xFF)
	Grey                 = NewColor(0x80, 0x80, 0x80, 0xFF)
	Green                = NewColor(0x00, 0x80, 0x00, 0xFF)
	GreenYellow          = NewColor(0xAD, 0xFF, 0x2F, 0xFF)
	HoneyDew             = NewColor(0xF0, 0xFF, 0xF0, 0xFF)
	HotPink              = NewColor(0xFF, 0x69, 0xB4, 0xFF)
	IndianRed            = NewColor(0xCD, 0x5C, 0x5C, 0xFF)
	Indigo               = NewColor(0x4B, 0x00, 0x82, 0xFF)
	Ivory                = NewColor(0xFF, 0xFF, 0xF0, 0xFF)
	Khaki                = NewColor(0xF0, 0xE6, 0x8C, 0xFF)
	Lavender             = NewColor(0xE6, 0xE6, 0xFA, 0xFF)
	LavenderBlush        = NewColor(0xFF, 0xF0, 0xF5, 0xFF)
	LawnGreen            = NewColor(0x7C, 0xFC, 0x00, 0xFF)
	LemonChiffon         = NewColor(0xFF, 0xFA, 0xCD, 0xFF)
	LightBlue            = NewColor(0xAD, 0xD8, 0xE6, 0xFF)
	LightCoral           = NewColor(0xF0, 0x80, 0x80, 0xFF)
	LightCyan            = NewColor(0xE0, 0xFF, 0xFF, 0xFF)
	LightGoldenRodYellow = NewColor(0xFA, 0xFA, 0xD2, 0xFF)
	LightGray            = NewColor(0xD3, 0xD3, 0xD3, 0xFF)
	LightGrey            = NewColor(0xD3, 0xD3, 0xD3, 0xFF)
	LightGreen           = NewColor(0x90, 0xEE, 0x90, 0xFF)
	LightPink            = NewColor(0xFF, 0xB6, 0xC1, 0xFF)
	LightSalmon          = NewColor(0xFF, 0xA0, 0x7A, 0xFF)
	LightSeaGreen        = NewColor(0x20, 0xB2, 0xAA, 0xFF)
	LightSkyBlue         = NewColor(0x87, 0xCE, 0xFA, 0xFF)
	LightSlateGray       = NewColor(0x77, 0x88, 0x99, 0xFF)
	LightSlateGrey       = NewColor(0x77, 0x88, 0x99, 0xFF)
	LightSteelBlue       = NewColor(0xB0, 0xC4, 0xDE, 0xFF)
	LightYellow          = NewColor(0xFF, 0xFF, 0xE0, 0xFF)
	Lime                 = NewColor(0x00, 0xFF, 0x00, 0xFF)
	LimeGreen            = NewColor(0x32, 0xCD, 0x32, 0xFF)
	Linen                = NewColor(0xFA, 0xF0, 0xE6, 0xFF)
	Magenta              = NewColor(0xFF, 0x00, 0xFF, 0xFF)
	Maroon               = NewColor(0x80, 0x00, 0x00, 0xFF)
	MediumAquaMarine     = NewColor(0x66, 0xCD, 0xAA, 0xFF)
	MediumBlue           = NewColor(0x00, 0x00, 0xCD, 0xFF)
	MediumOrchid         = NewColor(0xBA, 0x55, 0xD3, 0xFF)
	MediumPurple         = NewColor(0x93, 0x70, 0xDB, 0xFF)
	MediumSeaGreen       = NewColor(0x3C, 0xB3, 0x71, 0xFF)
	MediumSlateBlue      = NewColor(0x7B, 0x68, 0xEE, 0xFF)
	MediumSpringGreen    = NewColor(0x00, 0xFA, 0x9A, 0xFF)
	MediumTurquoise      = NewColor(0x48, 0xD1, 0xCC, 0xFF)
	MediumVioletRed      = NewColor(0xC7, 0x15, 0x85, 0xFF)
	MidnightBlue         = NewColor(0x19, 0x19, 0x70, 0xFF)
	MintCream            = NewColor(0xF5, 0xFF, 0xFA, 0xFF)
	MistyRose            = NewColor(0xFF, 0xE4, 0xE1, 0xFF)
	Moccasin             = NewColor(0xFF, 0xE4, 0xB5, 0xFF)
	NavajoWhite          = NewColor(0xFF, 0xDE, 0xAD, 0xFF)
	Navy                 = NewColor(0x00, 0x00, 0x80, 0xFF)
	OldLace              = NewColor(0xFD, 0xF5, 0xE6, 0xFF)
	Olive                = NewColor(0x80, 0x80, 0x00, 0xFF)
	OliveDrab            = NewColor(0x6B, 0x8E, 0x23, 0xFF)
	Orange               = NewColor(0xFF, 0xA5, 0x00, 0xFF)
	OrangeRed            = NewColor(0xFF, 0x45, 0x00, 0xFF)
	Orchid               = NewColor(0xDA, 0x70, 0xD6, 0xFF)
	PaleGoldenRod        = NewColor(0xEE, 0xE8, 0xAA, 0xFF)
	PaleGreen            = NewColor(0x98, 0xFB, 0x98, 0xFF)
	PaleTurquoise        = NewColor(0xAF, 0xEE, 0xEE, 0xFF)
	PaleVioletRed        = NewColor(0xDB, 0x70, 0x93, 0xFF)
	PapayaWhip           = NewColor(0xFF, 0xEF, 0xD5, 0xFF)
	PeachPuff            = NewColor(0xFF, 0xDA, 0xB9, 0xFF)
	Peru                 = NewColor(0xCD, 0x85, 0x3F, 0xFF)
	Pink                 = NewColor(0xFF, 0xC0, 0xCB, 0xFF)
	Plum                 = NewColor(0xDD, 0xA0, 0xDD, 0xFF)
	PowderBlue           = NewColor(0xB0, 0xE0, 0xE6, 0xFF)
	Purple               = NewColor(0x80, 0x00, 0x80, 0xFF)
	RebeccaPurple        = NewColor(0x66, 0x33, 0x99, 0xFF)
	Red                  = NewColor(0xFF, 0x00, 0x00, 0xFF)
	RosyBrown            = NewColor(0xBC, 0x8F, 0x8F, 0xFF)
	RoyalBlue            = NewColor(0x41, 0x69, 0xE1, 0xFF)
	SaddleBrown          = NewColor(0x8B, 0x45, 0x13, 0xFF)
	Salmon               = NewColor(0xFA, 0x80, 0x72, 0xFF)
	SandyBrown           = NewColor(0xF4, 0xA4, 0x60, 0xFF)
	SeaGreen             = NewColor(0x2E, 0x8B, 0x57, 0xFF)
	Seashell             = NewColor(0xFF, 0xF5, 0xEE, 0xFF)
	Sienna               = NewColor(0xA0, 0x52, 0x2D, 0xFF)
	Silver               = NewColor(0xC0, 0xC0, 0xC0, 0xFF)
	SkyBlue              = NewColor(0x87, 0xCE, 0xEB, 0xFF)
	SlateBlue            = NewColor(0x6A, 0x5A, 0xCD, 0xFF)
	SlateGray            = NewColor(0x70, 0x80, 0x90, 0xFF)
	SlateGrey            = NewColor(0x70, 0x80, 0x90, 0xFF)
	Snow                 = NewColor(0xFF, 0xFA, 0xFA, 0xFF)
	SpringGreen          = NewColor(0x00, 0xFF, 0x7F, 0xFF)
	SteelBlue            = NewColor(0x46, 0x82, 0xB4, 0xFF)
	Tan                  = NewColor(0xD2, 0xB4, 0x8C, 0xFF)
	Teal                 = NewColor(0x00, 0x80, 0x80, 0xFF)
	Thistle              = NewColor(0xD8, 0xBF, 0xD8, 0xFF)
	Tomato               = NewColor(0xFF, 0x63, 0x47, 0xFF)
	Turquoise            = NewColor(0x40, 0xE0, 0xD0, 0xFF)
	Violet               = NewColor(0xEE, 0x82, 0xEE, 0xFF)
	Wheat                = NewColor(0xF5, 0xDE, 0xB3, 0xFF)
	White                = NewColor(0xFF, 0xFF, 0xFF, 0xFF)
	WhiteSmoke           = NewColor(0xF5, 0xF5, 0xF5, 0xFF)
	Yellow               = NewColor(0xFF, 0xFF, 0x00, 0xFF)
	YellowGreen          = NewColor(0x9A, 0xCD, 0x32, 0xFF)

	// Transparent is not a CSS table entry but is handy as a zero pixel.
	Transparent = NewColor(0x00, 0x00, 0x00, 0x00)
)

// namedColors is the lookup table behind FromHTML. Built once at package
// init and never mutated afterwards.
var namedColors = map[string]Color{
	"aliceblue":            AliceBlue,
	"antiquewhite":         AntiqueWhite,
	"aqua":                 Aqua,
	"aquamarine":           AquaMarine,
	"azure":                Azure,
	"beige":                Beige,
	"bisque":               Bisque,
	"black":                Black,
	"blanchedalmond":       BlanchedAlmond,
	"blue":                 Blue,
	"blueviolet":           BlueViolet,
	"brown":                Brown,
	"burlywood":            BurlyWood,
	"cadetblue":            CadetBlue,
	"chartreuse":           Chartreuse,
	"chocolate":            Chocolate,
	"coral":                Coral,
	"cornflowerblue":       CornflowerBlue,
	"cornsilk":             Cornsilk,
	"crimson":              Crimson,
	"cyan":                 Cyan,
	"darkblue":             DarkBlue,
	"darkcyan":             DarkCyan,
	"darkgoldenrod":        DarkGoldenRod,
	"darkgray":             DarkGray,
	"darkgrey":             DarkGrey,
	"darkgreen":            DarkGreen,
	"darkkhaki":            DarkKhaki,
	"darkmagenta":          DarkMagenta,
	"darkolivegreen":       DarkOliveGreen,
	"darkorange":           DarkOrange,
	"darkorchid":           DarkOrchid,
	"darkred":              DarkRed,
	"darksalmon":           DarkSalmon,
	"darkseagreen":         DarkSeaGreen,
	"darkslateblue":        DarkSlateBlue,
	"darkslategray":        DarkSlateGray,
	"darkslategrey":        DarkSlateGrey,
	"darkturquoise":        DarkTurquoise,
	"darkviolet":           DarkViolet,
	"deeppink":             DeepPink,
	"deepskyblue":          DeepSkyBlue,
	"dimgray":              DimGray,
	"dimgrey":              DimGrey,
	"dodgerblue":           DodgerBlue,
	"firebrick":            FireBrick,
	"floralwhite":          FloralWhite,
	"forestgreen":          ForestGreen,
	"fuchsia":              Fuchsia,
	"gainsboro":            Gainsboro,
	"ghostwhite":           GhostWhite,
	"gold":                 Gold,
	"goldenrod":            GoldenRod,
	"gray":                 Gray,
	"grey":                 Grey,
	"green":                Green,
	"greenyellow":          GreenYellow,
	"honeydew":             HoneyDew,
	"hotpink":              HotPink,
	"indianred":            IndianRed,
	"indigo":               Indigo,
	"ivory":                Ivory,
	"khaki":                Khaki,
	"lavender":             Lavender,
	"lavenderblush":        LavenderBlush,
	"lawngreen":            LawnGreen,
	"lemonchiffon":         LemonChiffon,
	"lightblue":            LightBlue,
	"lightcoral":           LightCoral,
	"lightcyan":            LightCyan,
	"lightgoldenrodyellow": LightGoldenRodYellow,
	"lightgray":            LightGray,
	"lightgrey":            LightGrey,
	"lightgreen":           LightGreen,
	"lightpink":            LightPink,
	"lightsalmon":          LightSalmon,
	"lightseagreen":        LightSeaGreen,
	"lightskyblue":         LightSkyBlue,
	"lightslategray":       LightSlateGray,
	"lightslategrey":       LightSlateGrey,
	"lightsteelblue":       LightSteelBlue,
	"lightyellow":          LightYellow,
	"lime":                 Lime,
	"limegreen":            LimeGreen,
	"linen":                Linen,
	"magenta":              Magenta,
	"maroon":               Maroon,
	"mediumaquamarine":     MediumAquaMarine,
	"mediumblue":           MediumBlue,
	"mediumorchid":         MediumOrchid,
	"mediumpurple":         MediumPurple,
	"mediumseagreen":       MediumSeaGreen,
	"mediumslateblue":      MediumSlateBlue,
	"mediumspringgreen":    MediumSpringGreen,
	"mediumturquoise":      MediumTurquoise,
	"mediumvioletred":      MediumVioletRed,
	"midnightblue":         MidnightBlue,
	"mintcream":            MintCream,
	"mistyrose":            MistyRose,
	"moccasin":             Moccasin,
	"navajowhite":          NavajoWhite,
	"navy":                 Navy,
	"oldlace":              OldLace,
	"olive":                Olive,
	"olivedrab":            OliveDrab,
	"orange":               Orange,
	"orangered":            OrangeRed,
	"orchid":               Orchid,
	"palegoldenrod":        PaleGoldenRod,
	"palegreen":            PaleGreen,
	"paleturquoise":        PaleTurquoise,
	"palevioletred":        PaleVioletRed,
	"papayawhip":           PapayaWhip,
	"peachpuff":            PeachPuff,
	"peru":                 Peru,
	"pink":                 Pink,
	"plum":                 Plum,
	"powderblue":           PowderBlue,
	"purple":               Purple,
	"rebeccapurple":        RebeccaPurple,
	"red":                  Red,
	"rosybrown":            RosyBrown,
	"royalblue":            RoyalBlue,
	"saddlebrown":          SaddleBrown,
	"salmon":               Salmon,
	"sandybrown":           SandyBrown,
	"seagreen":             SeaGreen,
	"seashell":             Seashell,
	"sienna":               Sienna,
	"silver":               Silver,
	"skyblue":              SkyBlue,
	"slateblue":            SlateBlue,
	"slategray":            SlateGray,
	"slategrey":            SlateGrey,
	"snow":                 Snow,
	"springgreen":          SpringGreen,
	"steelblue":            SteelBlue,
	"tan":                  Tan,
	"teal":                 Teal,
	"thistle":              Thistle,
	"tomato":               Tomato,
	"turquoise":            Turquoise,
	"violet":               Violet,
	"wheat":                Wheat,
	"white":                White,
	"whitesmoke":           WhiteSmoke,
	"yellow":               Yellow,
	"yellowgreen":          YellowGreen,
}
