package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	origin := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, origin.File, origin.Line, origin.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError carrying the HTTP status and
// the client-safe message. The caller's location is recorded so BuildErrorResponse
// can log where the failure originated. Wrapping an existing CustomError keeps its
// status and messages and only appends the new location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	if customErr, ok := err.(*CustomError); ok {
		customErr.Locations = append(customErr.Locations, location)
		return customErr
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
