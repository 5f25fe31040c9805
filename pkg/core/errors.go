package core

import "errors"

var (
	ErrPermissionDenied      = errors.New("command author is not permitted to perform this action")
	ErrMissingArgument       = errors.New("missing argument")
	ErrUnknownRepositoryTag  = errors.New("unknown repository tag")
	ErrRemoteOperationFailed = errors.New("remote operation failed")
	ErrInvalidConfig         = errors.New("invalid config")
	ErrDuplicateTag          = errors.New("duplicate repository tag")
	ErrInvalidRepository     = errors.New("invalid repository name")
	ErrUnsupportedEvent      = errors.New("unsupported event")
)
