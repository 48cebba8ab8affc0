package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspector reads PDF structure with pdfcpu. It only looks; it never
// rejects an upload on its own.
type Inspector struct{}

func NewInspector() *Inspector { return &Inspector{} }

// PageCount parses data in memory and returns the number of pages.
func (Inspector) PageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}
