package domain

// CtxKey names values stored on the gin context by middleware.
type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeySession   CtxKey = "Session"
	KeyCSRFToken CtxKey = "CSRFToken"
	KeyTheme     CtxKey = "Theme"
)
