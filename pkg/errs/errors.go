package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusNotLoggedIn      = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
	ErrStatusConflict         = http.StatusConflict
	ErrStatusBadGateway       = http.StatusBadGateway
	ErrStatusGone             = http.StatusGone
)

var (
	ErrInternalServer           = errors.New("Internal server error")
	ErrClient                   = errors.New("Bad request")
	ErrNotLoggedIn              = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail  = errors.New("Email or password is incorrect")
	ErrForbiddenTab             = errors.New("Your role cannot access this section")
	ErrNotFound                 = errors.New("Resource not found")
	ErrProductNotFound          = errors.New("Product not found")
	ErrCartNotFound             = errors.New("Cart not found")
	ErrCartItemNotFound         = errors.New("Item is not in the cart")
	ErrOrderNotFound            = errors.New("Order not found")
	ErrAccountNotFound          = errors.New("Account not found")
	ErrEmailAlreadyUsed         = errors.New("Email already exists")
	ErrTokenExpired             = errors.New("The token is already expired")
	ErrConflict                 = errors.New("Conflicting record found")
	ErrDuplicateName            = errors.New("Duplicate name found")
	ErrCategoryInUse            = errors.New("Category is still used by a product")
	ErrUnknownCategory          = errors.New("Category does not exist")
	ErrEmptyCart                = errors.New("Cart is empty")
	ErrInvalidCoupon            = errors.New("Invalid or expired coupon code")
	ErrInvalidCheckoutDetails   = errors.New("Checkout details are incomplete")
	ErrPaymentMethodDisabled    = errors.New("Payment method is not available")
	ErrInvalidStatusTransition  = errors.New("Order status cannot move to the requested state")
	ErrInvalidOTP               = errors.New("Verification code is incorrect")
	ErrRegistrationExpired      = errors.New("Registration has expired, please register again")
	ErrCannotDeleteSelf         = errors.New("You cannot delete your own account")
	ErrRemoteStoreNotConfigured = errors.New("Remote store credentials are not configured")
	ErrDocumentNotFound         = errors.New("Document not found in remote store")
	ErrRemoteSchemaMissing      = errors.New("Remote store table is missing, run the setup script")
	ErrRemoteStore              = errors.New("Remote store request failed")
	ErrMailerNotConfigured      = errors.New("SMTP settings are not configured")
)

var errorMap = map[error]int{
	ErrInternalServer:           ErrStatusInternalServer,
	ErrClient:                   ErrStatusClient,
	ErrNotLoggedIn:              ErrStatusNotLoggedIn,
	ErrInvalidCredentialsEmail:  ErrStatusUnauthorized,
	ErrForbiddenTab:             ErrStatusNoPermission,
	ErrNotFound:                 ErrStatusNotFound,
	ErrProductNotFound:          ErrStatusNotFound,
	ErrCartNotFound:             ErrStatusNotFound,
	ErrCartItemNotFound:         ErrStatusNotFound,
	ErrOrderNotFound:            ErrStatusNotFound,
	ErrAccountNotFound:          ErrStatusNotFound,
	ErrEmailAlreadyUsed:         ErrStatusEmailAlreadyUsed,
	ErrTokenExpired:             ErrStatusUnauthorized,
	ErrConflict:                 ErrStatusConflict,
	ErrDuplicateName:            ErrStatusConflict,
	ErrCategoryInUse:            ErrStatusConflict,
	ErrUnknownCategory:          ErrStatusClient,
	ErrEmptyCart:                ErrStatusClient,
	ErrInvalidCoupon:            ErrStatusClient,
	ErrInvalidCheckoutDetails:   ErrStatusClient,
	ErrPaymentMethodDisabled:    ErrStatusClient,
	ErrInvalidStatusTransition:  ErrStatusConflict,
	ErrInvalidOTP:               ErrStatusClient,
	ErrRegistrationExpired:      ErrStatusGone,
	ErrCannotDeleteSelf:         ErrStatusConflict,
	ErrRemoteStoreNotConfigured: ErrStatusClient,
	ErrDocumentNotFound:         ErrStatusNotFound,
	ErrRemoteSchemaMissing:      ErrStatusBadGateway,
	ErrRemoteStore:              ErrStatusBadGateway,
	ErrMailerNotConfigured:      ErrStatusInternalServer,
}

// GetErrorStatusCode walks the wrap chain so fmt.Errorf("...: %w") keeps its status.
func GetErrorStatusCode(err error) int {
	for err != nil {
		if code, ok := errorMap[err]; ok {
			return code
		}
		err = errors.Unwrap(err)
	}

	return errorMap[ErrInternalServer]
}

// Sentinel returns the first known error in the chain, or ErrInternalServer.
func Sentinel(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := errorMap[e]; ok {
			return e
		}
	}

	return ErrInternalServer
}
