package course

// TileKind is the terrain of one map cell
type TileKind uint8

const (
	Rough TileKind = iota
	Tee
	TeeBox
	Fairway
	Green
	Flag
	DeepRough
)

var tileRunes = map[rune]TileKind{
	'T': Tee,
	'D': TeeBox,
	'=': Fairway,
	'@': Green,
	'F': Flag,
	'#': DeepRough,
}

// ParseTile maps a map-file character to its terrain; unknown characters are rough
func ParseTile(r rune) TileKind {
	if k, ok := tileRunes[r]; ok {
		return k
	}
	return Rough
}

// Rune returns the map-file character for the terrain
func (k TileKind) Rune() rune {
	switch k {
	case Tee:
		return 'T'
	case TeeBox:
		return 'D'
	case Fairway:
		return '='
	case Green:
		return '@'
	case Flag:
		return 'F'
	case DeepRough:
		return '#'
	default:
		return '.'
	}
}

func (k TileKind) String() string {
	switch k {
	case Tee:
		return "tee"
	case TeeBox:
		return "tee_box"
	case Fairway:
		return "fairway"
	case Green:
		return "green"
	case Flag:
		return "flag"
	case DeepRough:
		return "deep_rough"
	default:
		return "rough"
	}
}
