package utils

import "errors"

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrItemNotFound     = errors.New("itinerary item not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
	ErrImportFailed     = errors.New("list import failed")
	ErrSuggestDisabled  = errors.New("suggestions are not configured")
	ErrUpstreamRejected = errors.New("upstream service rejected the request")
	ErrMemberExists     = errors.New("member already on trip")
)
