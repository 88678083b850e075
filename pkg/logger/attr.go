package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// ShowID records the show identifier under the key "show_id".
func ShowID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("show_id", id)
}

// Role records a role name under the key "role".
func Role(role any) slog.Attr {
	if role == nil {
		return slog.Attr{}
	}
	return slog.Any("role", role)
}

// Collection records a document-store collection name under the key "collection".
func Collection(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("collection", name)
}

// Resource records a quota resource name under the key "resource".
func Resource(res any) slog.Attr {
	if res == nil {
		return slog.Attr{}
	}
	return slog.Any("resource", res)
}

// Plan records a subscription plan key under the key "plan".
func Plan(key any) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	return slog.Any("plan", key)
}
