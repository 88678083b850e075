// Package logger provides a small factory around log/slog plus attribute
// helpers shared by the stagekit packages.
//
// The factory produces either JSON (production) or text (development) output
// and attaches static service attributes:
//
//	log := logger.New(logger.WithProduction("stagekit"))
//	log.Warn("billing provider unreachable", logger.Error(err))
//
// Attribute helpers keep log keys consistent across packages (user_id,
// show_id, role, collection, resource, plan) so fail-open events can be
// correlated by operators.
package logger
