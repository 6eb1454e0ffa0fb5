package cvdsim

import "errors"

// ErrInvalidMatrixShape means a simulation matrix was supplied with a shape
// other than exactly 3x3. This is a precondition violation in the calling
// layer, not a runtime failure.
var ErrInvalidMatrixShape = errors.New("cvdsim: simulation matrix must be exactly 3x3")

// ErrInvalidChannelValue means a color channel was outside [0, 255] or not
// an integer.
var ErrInvalidChannelValue = errors.New("cvdsim: color channel must be an integer in [0, 255]")

// ErrInvalidBufferLength means a pixel buffer's length is not a multiple of
// four, so it cannot consist of whole RGBA groups.
var ErrInvalidBufferLength = errors.New("cvdsim: pixel buffer length must be a multiple of 4")

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("cvdsim: unsupported image format")
