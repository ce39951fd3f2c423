package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// decodeStrict — строгий парсинг: неизвестные поля и хвост после объекта запрещены.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

// ValidateMessageFromJSON — валидация одного сообщения из JSON.
func ValidateMessageFromJSON(ctx context.Context, validator ports.MessageValidator, raw []byte) (*domain.Message, error) {
	var msg domain.Message
	if err := decodeStrict(raw, &msg); err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ResponseResult — итог проверки ответа резервирования.
type ResponseResult struct {
	Valid   []domain.Message
	Invalid int
}

// ValidateResponseFromJSON — валидация ответа {"messages": [...]}.
// Отсутствующий или null messages — ошибка формата; невалидные сообщения считаются, но не прерывают проверку.
func ValidateResponseFromJSON(ctx context.Context, validator ports.MessageValidator, raw []byte) (ResponseResult, error) {
	var res ResponseResult

	var resp struct {
		Messages *[]domain.Message `json:"messages"`
	}
	if err := decodeStrict(raw, &resp); err != nil {
		return res, err
	}
	if resp.Messages == nil {
		return res, fmt.Errorf("invalid json: messages field is missing")
	}

	for i := range *resp.Messages {
		msg := (*resp.Messages)[i]
		if err := validator.Validate(ctx, &msg); err != nil {
			res.Invalid++
			continue
		}
		res.Valid = append(res.Valid, msg)
	}
	return res, nil
}
