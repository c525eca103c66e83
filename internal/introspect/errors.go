package introspect

import "errors"

var (
	// ErrMalformedEntitySource is returned when the struct declaration or the
	// TableName method cannot be located in the submitted entity source. Its
	// message is shown to the operator as is.
	ErrMalformedEntitySource = errors.New("code structure invalid, please check")

	// ErrSchemaIntrospectionFailed covers every failure between opening the
	// ephemeral connection and reading back the column metadata.
	ErrSchemaIntrospectionFailed = errors.New("schema introspection failed")
)
