package scene

import "errors"

var (
	// ErrUnknownFormat indicates a scene file extension that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scene: unknown file format")
	// ErrUnknownLayout indicates a layout name other than absolute, flow or table.
	ErrUnknownLayout = errors.New("scene: unknown layout")
	// ErrUnknownDock indicates an unrecognised dock style.
	ErrUnknownDock = errors.New("scene: unknown dock style")
	// ErrUnknownAutoSizeMode indicates an unrecognised auto-size mode.
	ErrUnknownAutoSizeMode = errors.New("scene: unknown auto-size mode")
	// ErrUnknownDirection indicates an unrecognised flow direction.
	ErrUnknownDirection = errors.New("scene: unknown flow direction")
	// ErrUnknownSizeType indicates a track that is not auto, absolute:N or percent:N.
	ErrUnknownSizeType = errors.New("scene: unknown track size type")
	// ErrBadRect indicates a bounds or expectation that is not four integers.
	ErrBadRect = errors.New("scene: rectangle must have 4 values")
	// ErrBadSize indicates a preferred size that is not two integers.
	ErrBadSize = errors.New("scene: size must have 2 values")
	// ErrBadEdges indicates a margin or padding with other than 1, 2 or 4 values.
	ErrBadEdges = errors.New("scene: edges must have 1, 2 or 4 values")
	// ErrBadCell indicates a cell that is not two integers.
	ErrBadCell = errors.New("scene: cell must have 2 values")
	// ErrDuplicateName indicates two nodes sharing a name.
	ErrDuplicateName = errors.New("scene: duplicate node name")
	// ErrUnknownNode indicates an expectation for a node that does not exist.
	ErrUnknownNode = errors.New("scene: expectation names unknown node")
)
