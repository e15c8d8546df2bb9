package traversal

import "errors"

var (
	// ErrBusy is returned by Paint while a run is active.
	ErrBusy = errors.New("traversal: controller is busy")
	// ErrUnknownPaint is returned by Paint for an undefined PaintKind.
	ErrUnknownPaint = errors.New("traversal: unknown paint kind")
)
