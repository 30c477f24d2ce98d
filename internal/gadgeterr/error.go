package gadgeterr

//nolint:gochecknoglobals
var (
	// ErrNoMemory occurs when the system could not allocate memory.
	ErrNoMemory = &Error{NoMemory}

	// ErrNoAccess occurs when the caller lacks the permissions for an
	// operation, or the filesystem is read-only.
	ErrNoAccess = &Error{NoAccess}

	// ErrInvalidParam occurs when an argument or an on-disk name is
	// malformed or out of range.
	ErrInvalidParam = &Error{InvalidParam}

	// ErrNotFound occurs when a file or directory does not exist (anymore).
	ErrNotFound = &Error{NotFound}

	// ErrIO occurs on input/output failures, including unparseable
	// attribute content.
	ErrIO = &Error{IO}

	// ErrExists occurs when an entity with the same identity already exists.
	ErrExists = &Error{Exists}

	// ErrNoDevice occurs when a device (controller) does not exist.
	ErrNoDevice = &Error{NoDevice}

	// ErrBusy occurs when a resource is in use, e.g. an enabled gadget or a
	// non-empty entity that was not removed recursively.
	ErrBusy = &Error{Busy}

	// ErrNotSupported occurs when an operation or a function type is not
	// supported.
	ErrNotSupported = &Error{NotSupported}

	// ErrPathTooLong occurs when a composed path would not fit into the
	// maximum path length.
	ErrPathTooLong = &Error{PathTooLong}

	// ErrOther occurs for any failure without a dedicated kind.
	ErrOther = &Error{Other}
)
