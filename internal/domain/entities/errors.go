package entities

import "errors"

// Ошибки домена.
var (
	ErrFullNameRequired     = errors.New("full name is required")
	ErrUsernameTooShort     = errors.New("username must contain at least 3 characters")
	ErrUsernameReserved     = errors.New("username is reserved")
	ErrInvalidPhone         = errors.New("phone must match +7 (XXX) XXX-XX-XX")
	ErrPasswordTooShort     = errors.New("password must contain at least 6 characters")
	ErrPasswordHasSpaces    = errors.New("password must not contain spaces")
	ErrUnknownRole          = errors.New("role must be jobseeker or employer")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAccountInactive      = errors.New("account is deactivated")
	ErrUserNotFound         = errors.New("user not found")
	ErrVacancyNotFound      = errors.New("vacancy not found")
	ErrResumeNotFound       = errors.New("resume not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrNotOwner             = errors.New("record belongs to another account")
	ErrVacancyFieldsMissing = errors.New("title, company and description are required")
	ErrResumeTitleRequired  = errors.New("resume title is required")
	ErrEducationRequired    = errors.New("resume must contain at least one education entry")
	ErrUnknownReviewStatus  = errors.New("review status must be approved or rejected")
	ErrAlreadyApplied       = errors.New("vacancy already has an application from this account")
	ErrRejectReasonRequired = errors.New("reject reason is required")
)
