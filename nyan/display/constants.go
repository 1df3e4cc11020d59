package display

// Text-mode grid constants
const (
	// WideColumns is the column count of the standard 80x25 text mode
	WideColumns = 80
	// NarrowColumns is the column count of the 40x25 text mode
	NarrowColumns = 40
	// Rows is the row count shared by both text modes
	Rows = 25
)

// Terminal preview constants
const (
	// DefaultFPS is the default playback rate of the terminal preview
	DefaultFPS = 8
	// MaxFPS caps the playback rate of the terminal preview
	MaxFPS = 60
	// FullBlock is the character drawn for every cell
	FullBlock = '█'
)

// Snapshot constants
const (
	// DefaultSnapshotScale is the default number of pixels per cell edge in PNG snapshots
	DefaultSnapshotScale = 8
	// CellAspect is the height/width ratio of a text-mode character cell
	CellAspect = 2
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
)
