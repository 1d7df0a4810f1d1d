package auth

import "go.uber.org/zap"

// Authentication outcome values logged by logAuthAttempt
const (
	authSuccess = "Success"
	authFail    = "Fail"
)

// logAuthAttempt records an authentication attempt.
// authType: Register|Login|Logout, identifier: email or user ID (optional)
func logAuthAttempt(log *zap.Logger, authType string, status string, identifier string, message string) {
	if log == nil {
		return
	}
	fields := []zap.Field{
		zap.String("auth_type", authType),
		zap.String("status", status),
	}
	if identifier != "" {
		fields = append(fields, zap.String("identifier", identifier))
	}
	if message != "" {
		fields = append(fields, zap.String("detail", message))
	}

	if status == authSuccess {
		log.Info("auth attempt", fields...)
		return
	}
	log.Warn("auth attempt", fields...)
}
