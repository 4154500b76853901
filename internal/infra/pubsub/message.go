package pubsub

import (
	"encoding/json"

	"loyalty/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// message is a serialised event ready for any transport.
type message struct {
	id         string
	eventType  string
	data       []byte
	attributes map[string]string
}

func newMessage(eventType, requestID string, payload any) (*message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType: eventType,
	}
	if requestID != "" {
		attributes[constants.AttrRequestID] = requestID
	}

	return &message{
		id:         uuid.NewString(),
		eventType:  eventType,
		data:       data,
		attributes: attributes,
	}, nil
}
