package errors

// ========== Error code constants ==========

// CodeSuccess success code
const (
	CodeSuccess = 200
)

// HTTP-level error codes (400-599)
const (
	CodeInvalidParam = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
)
