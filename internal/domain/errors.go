package domain

import "errors"

// codedError is a sentinel carrying a stable, client-facing code.
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func newError(code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Domain errors.
var (
	ErrProductNotFound       = newError("product_not_found", "product not found")
	ErrPostNotFound          = newError("post_not_found", "post not found")
	ErrBlockNotFound         = newError("block_not_found", "content block not found")
	ErrInvalidSetting        = newError("invalid_setting", "site setting needs a key")
	ErrUnsupportedCurrency   = newError("unsupported_currency", "unsupported currency")
	ErrUnsupportedLanguage   = newError("unsupported_language", "unsupported language")
	ErrInvalidEmail          = newError("invalid_email", "invalid email address")
	ErrInvalidBlock          = newError("invalid_block", "content block is invalid")
	ErrInvalidTranslation    = newError("invalid_translation", "translation entry is invalid")
	ErrTranslationSuperseded = newError("translation_superseded", "translation request superseded by a newer one")
	ErrTranslationUpstream   = newError("translation_upstream", "machine translation service failed")
	ErrTranslationDisabled   = newError("translation_disabled", "machine translation is not configured")
	ErrUnauthorized          = newError("unauthorized", "admin token required")
)

// Code returns the stable code of a domain error wrapped anywhere in err's
// chain, or "" when err is not a domain error.
func Code(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}
