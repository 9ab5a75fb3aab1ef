package wave

import "errors"

var (
	// ErrOutOfRange is returned by Model.Sample for a channel or frame
	// outside the model.
	ErrOutOfRange = errors.New("sample index out of range")

	// ErrChannelLength is returned when channel slices differ in length.
	ErrChannelLength = errors.New("channels have different lengths")
)
