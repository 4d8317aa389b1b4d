//go:build js && wasm

package jsdom

import (
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"

	"car-price-assistant/internal/core/domain"
)

var errNoCanvas = errors.New("chart canvas not found")

// ChartJS renders through the global Chart constructor of Chart.js.
type ChartJS struct{}

func NewChartJS() *ChartJS {
	return &ChartJS{}
}

func (ChartJS) Available() bool {
	return js.Global().Get("Chart").Type() == js.TypeFunction
}

func (ChartJS) Render(elementID string, cfg domain.ChartConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart.js: %v", r)
		}
	}()

	canvas := js.Global().Get("document").Call("getElementById", elementID)
	if canvas.IsNull() {
		return errNoCanvas
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}

	ctx := canvas.Call("getContext", "2d")
	js.Global().Get("Chart").New(ctx, js.Global().Get("JSON").Call("parse", string(raw)))
	return nil
}
