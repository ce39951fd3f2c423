package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"  // ответ резервирования {"messages": [...]}
	FormatJSONL InputFormat = "jsonl" // одно сообщение на строку
)

// ValidateFile — валидирует файл как ответ резервирования (JSON) или поток сообщений (JSONL)
// и пишет валидные сообщения в writer построчно.
func ValidateFile(ctx context.Context, validator ports.MessageValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	resSummary := ""

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return resSummary, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return resSummary, fmt.Errorf("read file: %w", err)
		}
		res, err := ValidateResponseFromJSON(ctx, validator, raw)
		if err != nil {
			return "0 valid / 0 invalid", err
		}
		for i := range res.Valid {
			if err := writeLine(ow, &res.Valid[i]); err != nil {
				return resSummary, err
			}
		}
		return fmt.Sprintf("%d valid / %d invalid", len(res.Valid), res.Invalid), nil

	case FormatJSONL:
		result, err := ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return resSummary, err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil

	default:
		return resSummary, fmt.Errorf("unsupported format: %s", format)
	}
}
