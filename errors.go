package ccsubdiv

import "errors"

// Sentinel errors returned by the mesh container reader and by Subd
// construction. Wrap with fmt.Errorf("...: %w", err) to add context;
// callers should use errors.Is against these values, never string matching.
var (
	// ErrBadMagic is returned when a container's header magic does not
	// match the expected byte sequence.
	ErrBadMagic = errors.New("ccsubdiv: bad container magic")

	// ErrUnsupportedVersion is not returned by any function in this
	// package: the container header carries no version field.
	ErrUnsupportedVersion = errors.New("ccsubdiv: unsupported container version")

	// ErrShortRead is returned when a container's declared element counts
	// require more bytes than the underlying reader provides.
	ErrShortRead = errors.New("ccsubdiv: short read")

	// ErrInvalidDepth is returned when Create is called with a negative
	// maximum depth.
	ErrInvalidDepth = errors.New("ccsubdiv: invalid subdivision depth")

	// ErrEmptyCage is returned when Create is called on a cage with zero
	// faces, edges, vertices or halfedges.
	ErrEmptyCage = errors.New("ccsubdiv: empty cage")

	// ErrNoUvs is returned by UV-refinement entry points when the cage
	// was built without UVs.
	ErrNoUvs = errors.New("ccsubdiv: cage has no uvs")
)
