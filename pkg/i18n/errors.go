package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage       = errors.New("i18n: empty language code")
	ErrFailedToParseYAML   = errors.New("i18n: failed to parse yaml")
	ErrInvalidCatalog      = errors.New("i18n: invalid catalog structure")
	ErrNoTranslationsFound = errors.New("i18n: no translations found")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
)
