// Command formcheck runs the form assistant against a query string: it
// auto-fills an in-memory car form, validates every field as a blur would,
// and optionally asks the prediction endpoint for a price.
//
//	formcheck '?brand=Toyota&model=Corolla&year=2020&mileage=45000'
//	formcheck -predict 'brand=BMW&model=X5&year=2021&...'
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/adapters/secondary/memdom"
	"car-price-assistant/internal/adapters/secondary/predictapi"
	"car-price-assistant/internal/config"
	"car-price-assistant/internal/core/domain"
	"car-price-assistant/internal/core/services"
)

func main() {
	predict := flag.Bool("predict", false, "request a price prediction when every field is valid")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-predict] QUERY\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	initLogger(cfg)

	doc := newCarForm(flag.Arg(0))
	page := services.NewDefaultAssistant(nil).Init(doc)

	invalid := 0
	for _, field := range page.Fields {
		field.Control().(*memdom.Control).Blur()
		state := field.State()
		if state.HasError {
			invalid++
			fmt.Printf("%-13s %-10q INVALID  %s\n", field.Name(), field.Control().Value(), state.Message)
			continue
		}
		fmt.Printf("%-13s %-10q ok\n", field.Name(), field.Control().Value())
	}

	if invalid > 0 {
		os.Exit(1)
	}
	if !*predict {
		return
	}

	car, err := services.AttributesFromValues(doc.Values())
	if err != nil {
		log.Fatalf("build prediction request: %v", err)
	}

	svc := services.NewPredictionService(predictapi.NewPredictClient(&cfg.Prediction))
	price, err := svc.PredictPrice(context.Background(), car)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	fmt.Printf("predicted price: %s\n", services.FormatIndianCurrency(price))
}

// newCarForm builds the price estimation form with the page's default selections.
func newCarForm(search string) *memdom.Document {
	doc := memdom.NewDocument(search)
	form := doc.AddForm()
	form.AddInput(domain.FieldBrand, "text", "")
	form.AddInput(domain.FieldModel, "text", "")
	form.AddInput(domain.FieldYear, "number", "")
	form.AddInput(domain.FieldMileage, "number", "")
	form.AddInput(domain.FieldEngineSize, "number", "")
	form.AddInput(domain.FieldHorsepower, "number", "")
	form.AddSelect(domain.FieldFuelType, "Petrol")
	form.AddSelect(domain.FieldTransmission, "Manual")
	form.AddButton("submit", "Predict Price")
	return doc
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
