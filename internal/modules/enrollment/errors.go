package enrollment

import "errors"

var (
	ErrNotFound        = errors.New("masterclass not found")
	ErrNotPublished    = errors.New("masterclass is not open for enrollment")
	ErrOwnMasterclass  = errors.New("cannot enroll in your own masterclass")
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrPaymentFailed   = errors.New("payment failed on every gateway")
)
