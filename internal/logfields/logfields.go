package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyVersion    = "version_key"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeySection    = "section"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyLeaves     = "leaves"
	KeyPages      = "pages"
	KeyIssues     = "issues"
	KeyIcon       = "icon"
	KeyTheme      = "theme"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyTrigger    = "trigger"
	KeyRequestID  = "request_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Version(key string) slog.Attr    { return slog.String(KeyVersion, key) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Leaves(n int) slog.Attr          { return slog.Int(KeyLeaves, n) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Issues(n int) slog.Attr          { return slog.Int(KeyIssues, n) }
func Icon(name string) slog.Attr      { return slog.String(KeyIcon, name) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func Trigger(t string) slog.Attr      { return slog.String(KeyTrigger, t) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
