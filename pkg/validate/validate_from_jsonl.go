package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream — читает JSONL (одно сообщение на строку), валидирует каждую строку, валидные пишет в writer.
// Печатает КАНОНИЧЕСКИЙ JSON одной строкой на каждую валидную запись.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.MessageValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		msg, err := ValidateMessageFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			// не возвращаем ошибку — просто пропускаем невалидную строку
			continue
		}

		if err := writeLine(ow, msg); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// writeLine — компактный JSON + перевод строки.
func writeLine(ow io.Writer, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
