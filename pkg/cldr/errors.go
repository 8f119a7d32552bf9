package cldr

import "errors"

var (
	ErrDuplicateLocale = errors.New("cldr: duplicate locale name")
	ErrEmptyLocaleName = errors.New("cldr: locale name cannot be empty")
	ErrNoLocaleData    = errors.New("cldr: no locale data")
	ErrNilTable        = errors.New("cldr: table cannot be nil")
	ErrUnknownLocale   = errors.New("cldr: unknown locale")
	ErrNoTerritory     = errors.New("cldr: no territory information")
	ErrNoTimezone      = errors.New("cldr: no timezone information")
)
