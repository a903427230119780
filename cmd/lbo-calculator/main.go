package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/iwvelando/lbo-calculator/internal/calculator"
	"github.com/iwvelando/lbo-calculator/internal/config"
	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/iwvelando/lbo-calculator/pkg/output"
	"github.com/iwvelando/lbo-calculator/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	principal := flag.Float64("principal", 0, "loan principal override")
	rate := flag.Float64("rate", 0, "annual interest rate override (percent)")
	years := flag.Int("years", 0, "loan term override (years)")
	ebitda := flag.Float64("ebitda", 0, "annual cashflow/EBITDA override")
	salePrice := flag.Float64("sale-price", 0, "sale price override")
	mode := flag.String("mode", "", "display mode override: totals, monthly-average")
	flag.Parse()

	// Load the config file to get logging configuration. A missing file at
	// the default location falls back to the built-in deal defaults so the
	// tool works without any configuration.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && *configLocation == constants.DefaultConfigFile {
			conf = config.DefaultConfiguration()
		} else {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Build the request from the configured deal, then apply any per-field
	// overrides that were explicitly set on the command line.
	request := conf.Request()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "principal":
			request.Principal = *principal
		case "rate":
			request.AnnualRatePercent = *rate
		case "years":
			request.TermYears = *years
		case "ebitda":
			request.CashflowOrEbitda = *ebitda
		case "sale-price":
			request.SalePrice = *salePrice
		case "mode":
			request.DisplayMode = *mode
		}
	})

	// Validate configuration and display any warnings
	warnings := config.FromRequest(request).ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the single computation pass.
	result, err := calculator.Compute(logger, request)
	if err != nil {
		logger.Fatal("failed to compute amortization schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}
}
