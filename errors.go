package mesh2d

import "errors"

// Configuration errors returned by NewStrokeStyle and StrokeStyle.Validate.
var (
	ErrInvalidWidth       = errors.New("mesh2d: stroke width must be positive")
	ErrInvalidSegmentStep = errors.New("mesh2d: minimum segment step must be positive")
	ErrInvalidPointCount  = errors.New("mesh2d: point count must be at least 3")
	ErrInvalidAngularStep = errors.New("mesh2d: angular step must be 0 or in [pi/1024, pi/2]")
)

// Path errors returned by ValidatePath.
var (
	ErrPathTooShort      = errors.New("mesh2d: path has too few points")
	ErrDegenerateSegment = errors.New("mesh2d: path has a zero-length or overflowing segment")
	ErrNonFinitePoint    = errors.New("mesh2d: path has a non-finite point")
)

// ErrUnknownFormat is returned when a style file has no recognised format.
var ErrUnknownFormat = errors.New("mesh2d: unknown style format")
