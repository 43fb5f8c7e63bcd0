package traits

// PaletteSize is the number of colors in every raw palette.
const PaletteSize = 6

// rawPalettes are the fixed palettes a seed selects from. Order matters: a
// seed resolves to a prefix of one of these, so slot 0 is the base fill.
var rawPalettes = [...][PaletteSize]string{
	{"#f4a261", "#264653", "#e76f51", "#2a9d8f", "#e9c46a", "#8ab17d"},
	{"#8ecae6", "#023047", "#ffb703", "#219ebc", "#fb8500", "#ffffff"},
	{"#b5e48c", "#1a4301", "#76c893", "#34a0a4", "#d9ed92", "#184e77"},
	{"#ffafcc", "#3d0066", "#bde0fe", "#cdb4db", "#a2d2ff", "#ffc8dd"},
	{"#ef476f", "#073b4c", "#ffd166", "#06d6a0", "#118ab2", "#fcfcfc"},
	{"#c8b6ff", "#22223b", "#ffd6ff", "#b8c0ff", "#e7c6ff", "#9a8c98"},
	{"#f9c74f", "#3a0ca3", "#f94144", "#90be6d", "#577590", "#f8961e"},
	{"#9b5de5", "#00171f", "#f15bb5", "#fee440", "#00bbf9", "#00f5d4"},
	{"#e5e5e5", "#14213d", "#fca311", "#000000", "#ffffff", "#8d99ae"},
	{"#a3b18a", "#344e41", "#dad7cd", "#588157", "#3a5a40", "#bc6c25"},
	{"#f28482", "#0d1b2a", "#84a59d", "#f6bd60", "#f7ede2", "#f5cac3"},
	{"#6d6875", "#f7f7f7", "#b5838d", "#e5989b", "#ffb4a2", "#ffcdb2"},
}

// PaletteCount is the number of raw palettes.
const PaletteCount = len(rawPalettes)

// RawPalette returns a copy of raw palette i. Out-of-range indices clamp.
func RawPalette(i int) []string {
	if i < 0 {
		i = 0
	}
	if i >= PaletteCount {
		i = PaletteCount - 1
	}
	p := rawPalettes[i]
	return append([]string(nil), p[:]...)
}
