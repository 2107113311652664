package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/404kidwiz/credit-lift-nexus/internal/history"
	"github.com/404kidwiz/credit-lift-nexus/internal/smoke"
	"github.com/404kidwiz/credit-lift-nexus/pkg/types"
)

const (
	// defaultTimeout bounds the wait for a response. Report processing
	// can take minutes, hence the 5 minute ceiling.
	defaultTimeout   = 300 * time.Second
	defaultUserAgent = "credit-lift-nexus/0.1"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke [url]",
	Short: "Send one test request to the processor and print the outcome",
	Long: `Smoke sends a single POST request with a JSON payload (pdf_url, user_id)
to the processor and prints the status code, headers, and body. Without an
argument it targets the local functions-framework endpoint; with a URL
argument it targets that deployed function.

All outcomes, including transport failures, are printed and the process
exits normally.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSmoke,
}

func init() {
	smokeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 300s)")
	smokeCmd.Flags().String("pdf-url", "", "override the pdf_url payload field")
	smokeCmd.Flags().String("user-id", "", "override the user_id payload field")
	smokeCmd.Flags().String("payload-file", "", "YAML file overriding payload fields")
	smokeCmd.Flags().Bool("record", false, "record this run in the local run log")

	rootCmd.AddCommand(smokeCmd)
}

func runSmoke(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("smoke.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("smoke.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	cfg := types.SmokeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		Endpoint: viper.GetString("smoke.endpoint"),
	}

	payload := smoke.DefaultPayload()
	if path, _ := cmd.Flags().GetString("payload-file"); path != "" {
		p, err := smoke.LoadPayloadFile(path)
		if err != nil {
			return err
		}
		payload = p
	}
	if v, _ := cmd.Flags().GetString("pdf-url"); v != "" {
		payload.PDFURL = v
	}
	if v, _ := cmd.Flags().GetString("user-id"); v != "" {
		payload.UserID = v
	}

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	target := smoke.ResolveTarget(arg, cfg.Endpoint)

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	res := smoke.Run(client, target, payload, cfg, out)

	record, _ := cmd.Flags().GetBool("record")
	if record || viper.GetBool("history.enabled") {
		// A run log failure must not fail the smoke run.
		if err := recordRun(res); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: run log: %v\n", err)
		}
	}

	smoke.WriteBanner(out)
	return nil
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Enabled:    viper.GetBool("history.enabled"),
		Path:       viper.GetString("history.path"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func recordRun(res types.InvocationResult) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordResult(context.Background(), res)
}
