package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"kurs/internal/interaction/privatbank"
	"kurs/internal/usecases"
)

var ratesCmd = &cobra.Command{
	Use:   "rates <days>",
	Short: "Print EUR/USD exchange rates for the last <days> days (1-10)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// past this point failures are not usage problems
		cmd.SilenceUsage = true

		days, err := strconv.Atoi(args[0])
		if err != nil {
			return &exitError{code: exitNotInteger, msg: "<days> must be an integer."}
		}

		// checked again inside the usecase, the CLI keeps its own message
		if days < usecases.MinDays || days > usecases.MaxDays {
			return &exitError{code: exitOutOfRange, msg: "Please provide a number of days between 1 and 10."}
		}

		client := &http.Client{Timeout: cnf.API.Timeout}
		defer client.CloseIdleConnections()

		interaction := privatbank.NewInteraction(logger, client, cnf.API.BaseURL)
		getRatesUC := usecases.NewGetRatesUsecase(logger, interaction)

		rates, err := getRatesUC.GetRates(cmd.Context(), days)
		if err != nil {
			if errors.Is(err, usecases.ErrDaysOutOfRange) {
				return &exitError{code: exitOutOfRange, msg: err.Error()}
			}

			return &exitError{code: exitRuntime, msg: err.Error()}
		}

		out, err := json.MarshalIndent(rates, "", "  ")
		if err != nil {
			return &exitError{code: exitRuntime, msg: fmt.Sprintf("encode result: %v", err)}
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}
