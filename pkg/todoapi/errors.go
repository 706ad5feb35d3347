package todoapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure side of every Client operation. It is a closed set:
// the only implementations are NetworkError, ItemNotFoundError and
// UnknownAPIError. All three are comparable values, so errors can be matched
// with == as well as with a type switch:
//
//	switch e := err.(type) {
//	case todoapi.NetworkError:
//	case todoapi.ItemNotFoundError:
//	case todoapi.UnknownAPIError:
//	    log.Printf("status %d", e.StatusCode)
//	}
type Error interface {
	error
	todoAPIError()
}

// NetworkError reports that no usable response was obtained: the request
// could not be sent, or the response body could not be decoded.
type NetworkError struct{}

func (NetworkError) Error() string { return "network error" }

func (NetworkError) todoAPIError() {}

// ItemNotFoundError reports that the requested task does not exist.
type ItemNotFoundError struct{}

func (ItemNotFoundError) Error() string { return "item not found" }

func (ItemNotFoundError) todoAPIError() {}

// UnknownAPIError reports any other unsuccessful HTTP status.
type UnknownAPIError struct {
	StatusCode int
}

func (e UnknownAPIError) Error() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("unknown api error: %d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("unknown api error: %d", e.StatusCode)
}

func (UnknownAPIError) todoAPIError() {}

// IsNetworkError returns true if err is a NetworkError.
func IsNetworkError(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

// IsItemNotFound returns true if err is an ItemNotFoundError.
func IsItemNotFound(err error) bool {
	var target ItemNotFoundError
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status carried by an UnknownAPIError.
func StatusCode(err error) (int, bool) {
	var target UnknownAPIError
	if errors.As(err, &target) {
		return target.StatusCode, true
	}
	return 0, false
}

// mapStatus applies the generic status rule: every unsuccessful status maps
// to UnknownAPIError carrying that exact code.
func mapStatus(statusCode int) Error {
	return UnknownAPIError{StatusCode: statusCode}
}

// mapGetStatus is mapStatus with the single-task fetch override for 404.
func mapGetStatus(statusCode int) Error {
	if statusCode == http.StatusNotFound {
		return ItemNotFoundError{}
	}
	return mapStatus(statusCode)
}
