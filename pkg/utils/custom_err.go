package utils

import "errors"

var (
	ErrInvalidTripDuration  = errors.New("trip must span at least one full day")
	ErrLocationNotFound     = errors.New("location not found")
	ErrNoStayCandidate      = errors.New("no stay candidate found")
	ErrAttractionExhaustion = errors.New("not enough attractions for this day")
	ErrInvalidDistance      = errors.New("distance must not be negative")
	ErrSessionNotFound      = errors.New("session not found or expired")
	ErrEmptyPool            = errors.New("no places available for this anchor")
	ErrUpstreamError        = errors.New("upstream service error")
	ErrInvalidInput         = errors.New("invalid input")
)
