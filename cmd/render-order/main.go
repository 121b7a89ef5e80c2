// CLI для локального рендера заказа: JSON с заявкой → PDF-файл.
// Удобно для проверки вёрстки документа без запуска сервиса.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/distrinaranjos/internal/renderer"
	"github.com/Gunvolt24/distrinaranjos/pkg/validate"
)

func main() {
	inputPath := flag.String("in", "", "path to order request JSON. If empty, reads from stdin.")
	outputPath := flag.String("out", "", "path to output PDF. If empty, uses the generated file name.")
	flag.Parse()

	if err := run(*inputPath, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "render-order: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	var (
		raw []byte
		err error
	)
	if inputPath == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	ctx := context.Background()
	req, err := validate.OrderRequestFromJSON(ctx, validate.NewOrderValidator(), raw)
	if err != nil {
		return err
	}

	rendered, err := renderer.NewRenderer().Render(req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := outputPath
	if out == "" {
		out = rendered.FileName
	}
	if err := os.WriteFile(out, rendered.Bytes, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	fmt.Fprintf(os.Stderr, "ok: %s (pages=%d, total=%d, items=%d)\n",
		out, rendered.Pages, rendered.Total, rendered.TotalItems)
	return nil
}
