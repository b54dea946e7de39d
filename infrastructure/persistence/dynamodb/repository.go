package dynamodb

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	appErrors "letstayinn-backend/pkg/errors"
)

// storageError translates a store fault into an application error. Condition
// failures and cancelled transactions are expected outcomes; callers map
// those themselves before falling back here.
func storageError(err error, op string) error {
	if errors.Is(err, ErrThrottled) || errors.Is(err, ErrUnavailable) {
		return appErrors.NewUnavailableError(op).WithCause(err)
	}
	return appErrors.NewInternalError(op).WithCause(err)
}

// decodeAll unmarshals and decodes a page of raw items. A record that fails
// to decode aborts the whole read as CorruptRecord rather than being dropped.
func decodeAll[I any, E any](raw []map[string]types.AttributeValue, resource string, decode func(I) (E, error)) ([]E, error) {
	out := make([]E, 0, len(raw))
	for _, av := range raw {
		var item I
		if err := attributevalue.UnmarshalMap(av, &item); err != nil {
			return nil, appErrors.NewCorruptRecordError(resource, err)
		}
		entity, err := decode(item)
		if err != nil {
			return nil, appErrors.NewCorruptRecordError(resource, err)
		}
		out = append(out, entity)
	}
	return out, nil
}
