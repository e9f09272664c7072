package services

import (
	"errors"
	"fmt"

	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
)

// User-visible validation messages
const (
	MsgTitleRequired   = "title required"
	MsgInvalidFileType = "invalid file type"
)

var (
	MsgTitleTooLong = fmt.Sprintf("title too long (max %d characters)", models.TitleMaxLength)
	MsgLinkTooLong  = fmt.Sprintf("link too long (max %d characters)", models.LinkMaxLength)
)

// ErrNotFound is returned for an unknown project id
var ErrNotFound = repositories.ErrNotFound

// ValidationError reports bad or missing input; no state was changed
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
