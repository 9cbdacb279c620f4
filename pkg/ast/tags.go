package ast

// Tag is a markup tag name from the TAML vocabulary
type Tag string

// Standard foreground colors
const (
	Black   Tag = "black"
	Red     Tag = "red"
	Green   Tag = "green"
	Yellow  Tag = "yellow"
	Blue    Tag = "blue"
	Magenta Tag = "magenta"
	Cyan    Tag = "cyan"
	White   Tag = "white"
)

// Bright foreground colors
const (
	BrightBlack   Tag = "brightBlack"
	BrightRed     Tag = "brightRed"
	BrightGreen   Tag = "brightGreen"
	BrightYellow  Tag = "brightYellow"
	BrightBlue    Tag = "brightBlue"
	BrightMagenta Tag = "brightMagenta"
	BrightCyan    Tag = "brightCyan"
	BrightWhite   Tag = "brightWhite"
)

// Background colors
const (
	BgBlack   Tag = "bgBlack"
	BgRed     Tag = "bgRed"
	BgGreen   Tag = "bgGreen"
	BgYellow  Tag = "bgYellow"
	BgBlue    Tag = "bgBlue"
	BgMagenta Tag = "bgMagenta"
	BgCyan    Tag = "bgCyan"
	BgWhite   Tag = "bgWhite"
)

// Bright background colors
const (
	BgBrightBlack   Tag = "bgBrightBlack"
	BgBrightRed     Tag = "bgBrightRed"
	BgBrightGreen   Tag = "bgBrightGreen"
	BgBrightYellow  Tag = "bgBrightYellow"
	BgBrightBlue    Tag = "bgBrightBlue"
	BgBrightMagenta Tag = "bgBrightMagenta"
	BgBrightCyan    Tag = "bgBrightCyan"
	BgBrightWhite   Tag = "bgBrightWhite"
)

// Text styles
const (
	Bold          Tag = "bold"
	Dim           Tag = "dim"
	Italic        Tag = "italic"
	Underline     Tag = "underline"
	Strikethrough Tag = "strikethrough"
)

// TagKind groups tags by what they style
type TagKind int

const (
	KindUnknown TagKind = iota
	KindForeground
	KindBackground
	KindTextStyle
)

func (k TagKind) String() string {
	switch k {
	case KindForeground:
		return "foreground"
	case KindBackground:
		return "background"
	case KindTextStyle:
		return "text style"
	default:
		return "unknown"
	}
}

var (
	standardColors = []Tag{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	brightColors   = []Tag{BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan, BrightWhite}
	bgColors       = []Tag{BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite}
	bgBrightColors = []Tag{BgBrightBlack, BgBrightRed, BgBrightGreen, BgBrightYellow, BgBrightBlue, BgBrightMagenta, BgBrightCyan, BgBrightWhite}
	textStyles     = []Tag{Bold, Dim, Italic, Underline, Strikethrough}

	vocabulary = buildVocabulary()
)

func buildVocabulary() map[Tag]TagKind {
	v := make(map[Tag]TagKind, 37)
	for _, group := range [][]Tag{standardColors, brightColors} {
		for _, t := range group {
			v[t] = KindForeground
		}
	}
	for _, group := range [][]Tag{bgColors, bgBrightColors} {
		for _, t := range group {
			v[t] = KindBackground
		}
	}
	for _, t := range textStyles {
		v[t] = KindTextStyle
	}
	return v
}

// Tags returns the full vocabulary in a stable order: standard, bright,
// background, bright background, then text styles.
func Tags() []Tag {
	all := make([]Tag, 0, len(vocabulary))
	all = append(all, standardColors...)
	all = append(all, brightColors...)
	all = append(all, bgColors...)
	all = append(all, bgBrightColors...)
	all = append(all, textStyles...)
	return all
}

// ColorTags returns the 16 foreground tags (standard and bright)
func ColorTags() []Tag {
	return append(append([]Tag{}, standardColors...), brightColors...)
}

// IsValidTag reports whether name belongs to the vocabulary. Matching is
// case-sensitive.
func IsValidTag(name string) bool {
	_, ok := vocabulary[Tag(name)]
	return ok
}

// Kind reports what the tag styles
func (t Tag) Kind() TagKind {
	return vocabulary[t]
}

// Foreground returns the foreground color a background tag paints with, e.g.
// bgBrightRed -> brightRed. Other tags are returned unchanged.
func (t Tag) Foreground() Tag {
	for i, bg := range bgColors {
		if bg == t {
			return standardColors[i]
		}
	}
	for i, bg := range bgBrightColors {
		if bg == t {
			return brightColors[i]
		}
	}
	return t
}

func (t Tag) String() string { return string(t) }
