//go:build js && wasm

// Command wasm is the in-browser form assistant. Build with
// GOOS=js GOARCH=wasm and serve the binary as /static/main.wasm.
package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/adapters/secondary/jsdom"
	"car-price-assistant/internal/adapters/secondary/predictapi"
	"car-price-assistant/internal/config"
	"car-price-assistant/internal/core/domain"
	"car-price-assistant/internal/core/services"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, DisableTimestamp: true})
	log.SetLevel(log.InfoLevel)

	doc := jsdom.NewDocument()

	assistant := services.NewDefaultAssistant(jsdom.NewChartJS())
	page := assistant.Init(doc)
	log.WithFields(log.Fields{
		"filled": page.Filled,
		"fields": len(page.Fields),
		"chart":  page.ChartDrawn,
	}).Info("car price assistant ready")

	predictor := services.NewPredictionService(predictapi.NewPredictClient(&config.PredictionConfig{
		BaseURL: doc.Origin(),
		Path:    "/api/predict",
	}))
	loading := services.NewLoadingState()

	global := js.Global()
	global.Set("predictPriceAPI", js.FuncOf(func(this js.Value, args []js.Value) any {
		return predictPromise(predictor, args)
	}))
	global.Set("formatIndianCurrency", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return services.FormatIndianCurrency(0)
		}
		return services.FormatIndianCurrency(args[0].Float())
	}))
	global.Set("showLoading", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			loading.Show(jsdom.WrapButton(args[0]))
		}
		return nil
	}))
	global.Set("hideLoading", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 1 {
			loading.Hide(jsdom.WrapButton(args[0]), args[1].String())
		}
		return nil
	}))

	select {}
}

// predictPromise returns a Promise resolving to the predicted price. The
// request runs on its own goroutine so the event loop is not blocked.
func predictPromise(predictor *services.PredictionService, args []js.Value) js.Value {
	executor := js.FuncOf(func(this js.Value, p []js.Value) any {
		resolve, reject := p[0], p[1]

		var car domain.CarAttributes
		if len(args) > 0 {
			raw := js.Global().Get("JSON").Call("stringify", args[0]).String()
			if err := json.Unmarshal([]byte(raw), &car); err != nil {
				reject.Invoke(jsError(err))
				return nil
			}
		}

		go func() {
			price, err := predictor.PredictPrice(context.Background(), car)
			if err != nil {
				reject.Invoke(jsError(err))
				return
			}
			resolve.Invoke(price)
		}()
		return nil
	})
	return js.Global().Get("Promise").New(executor)
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
