package dynamodb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors returned by store operations. Repositories translate them
// into application errors; the raw SDK error stays wrapped underneath.
var (
	ErrNotFound           = errors.New("item not found")
	ErrPreconditionFailed = errors.New("write precondition failed")
	ErrThrottled          = errors.New("request throttled")
	ErrUnavailable        = errors.New("dynamodb unavailable")
)

// conditionalCheckFailedCode is the per-item cancellation code DynamoDB
// reports when a transaction leg's condition did not hold.
const conditionalCheckFailedCode = "ConditionalCheckFailed"

// TransactionCanceledError reports a cancelled transaction with the
// cancellation code of each leg, in the order the legs were submitted.
type TransactionCanceledError struct {
	Codes []string
	cause *types.TransactionCanceledException
}

func (e *TransactionCanceledError) Error() string {
	return fmt.Sprintf("transaction canceled: [%s]", strings.Join(e.Codes, ", "))
}

func (e *TransactionCanceledError) Unwrap() error {
	return e.cause
}

// ConditionFailedAt reports whether leg i was cancelled by its condition.
func (e *TransactionCanceledError) ConditionFailedAt(i int) bool {
	return i >= 0 && i < len(e.Codes) && e.Codes[i] == conditionalCheckFailedCode
}

// AnyConditionFailed reports whether any leg was cancelled by its condition.
func (e *TransactionCanceledError) AnyConditionFailed() bool {
	for _, code := range e.Codes {
		if code == conditionalCheckFailedCode {
			return true
		}
	}
	return false
}

// mapError translates SDK errors into the store's sentinel errors. Errors it
// does not recognize pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return fmt.Errorf("%w: %s", ErrPreconditionFailed, condErr.ErrorMessage())
	}

	var txErr *types.TransactionCanceledException
	if errors.As(err, &txErr) {
		codes := make([]string, len(txErr.CancellationReasons))
		for i, reason := range txErr.CancellationReasons {
			if reason.Code != nil {
				codes[i] = *reason.Code
			}
		}
		return &TransactionCanceledError{Codes: codes, cause: txErr}
	}

	var throughputErr *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughputErr) {
		return fmt.Errorf("%w: %s", ErrThrottled, throughputErr.ErrorMessage())
	}

	var limitErr *types.RequestLimitExceeded
	if errors.As(err, &limitErr) {
		return fmt.Errorf("%w: %s", ErrThrottled, limitErr.ErrorMessage())
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException":
			return fmt.Errorf("%w: %s", ErrThrottled, apiErr.ErrorMessage())
		case "ServiceUnavailable", "InternalServerError", "ResourceNotFoundException":
			return fmt.Errorf("%w: %s: %s", ErrUnavailable, apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
	}

	return err
}
