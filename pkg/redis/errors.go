package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redis.errors.failed_to_parse_connection_string")
	ErrNotReady                = errors.New("redis.errors.not_ready")
)
