package cmd

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/tonality/constants"
	"github.com/jsphweid/tonality/metrics"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on, LISTEN_ADDR or :8080 by default")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long: `Serves pitch, interval and scale lookups plus engraving sessions over
HTTP. Scales are saved in DynamoDB when DYNAMO_ENDPOINT is set and in memory
otherwise. SENTRY_DSN turns on error and request reporting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn := constants.GetSentryDSN()
		if dsn != "" {
			err := sentry.Init(sentry.ClientOptions{
				Dsn:              dsn,
				EnableTracing:    true,
				TracesSampleRate: 1.0,
			})
			if err != nil {
				return errors.Wrap(err, "could not start sentry")
			}
			defer sentry.Flush(2 * time.Second)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		sessions := NewSessions(constants.GetSessionTTL())
		router := NewRouter(store, sessions, metrics.NewSentryMetrics(dsn != ""))

		addr := serveAddr
		if addr == "" {
			addr = constants.GetListenAddr()
		}
		logger.Info("listening", "addr", addr, "dynamo", constants.GetDynamoEndpoint() != "", "sentry", dsn != "")
		return http.ListenAndServe(addr, router)
	},
}
