package config

// FontID indexes Fonts
type FontID int

const (
	FontTitle FontID = iota
	FontList
	FontNumber
	FontType
	FontDescription
)
