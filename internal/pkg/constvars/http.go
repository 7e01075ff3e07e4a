package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-Id"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)
