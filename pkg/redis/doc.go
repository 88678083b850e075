// Package redis provides a retrying connection helper for the go-redis
// client, configured via environment variables. The Redis backend of
// pkg/viewcache builds on the returned client.
package redis
