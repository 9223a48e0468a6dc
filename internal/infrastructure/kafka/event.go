package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	"phiCalc/internal/domain"
)

// Атрибуты CloudEvents для событий о расчётах.
const (
	EventType   = "phicalc.operation.computed"
	EventSource = "phicalc/usecase/scale"
	// ContentType — заголовок сообщения для structured-режима CloudEvents.
	ContentType = "application/cloudevents+json"
)

// encodeEvent заворачивает JSON операции в CloudEvent (structured JSON). subject — ключ кэша.
func encodeEvent(subject string, payload []byte, now time.Time) ([]byte, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("event id: %w", err)
	}
	event := cloudevents.NewEvent()
	event.SetID(id.String())
	event.SetSource(EventSource)
	event.SetType(EventType)
	event.SetSubject(subject)
	event.SetTime(now)
	if err := event.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return nil, fmt.Errorf("event data: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("event validate: %w", err)
	}
	return json.Marshal(event)
}

// decodeEvent разбирает CloudEvent и достаёт из него операцию. Чужой тип события — ошибка.
func decodeEvent(value []byte) (domain.Operation, error) {
	var event cloudevents.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return domain.Operation{}, fmt.Errorf("decode event: %w", err)
	}
	if event.Type() != EventType {
		return domain.Operation{}, fmt.Errorf("unexpected event type %q", event.Type())
	}
	var op domain.Operation
	if err := event.DataAs(&op); err != nil {
		return domain.Operation{}, fmt.Errorf("event data: %w", err)
	}
	return op, nil
}
