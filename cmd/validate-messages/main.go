package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/reservation-worker/pkg/validate"
)

// CLI-приложение для валидации сохранённых ответов резервирования и потоков сообщений.
func main() {
	inputPath := flag.String("in", "", "path to input (.json reservation response or .jsonl messages). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	ack := flag.Bool("ack", false, "require id and reservation_id (messages will be acknowledged with DELETE)")
	flag.Parse()

	ctx := context.Background()
	messageValidator := validate.NewMessageValidator(*ack)

	format := validate.InputFormat(*formatStr)

	path := *inputPath
	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, messageValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
