package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "debtwise-cli",
		Short: "DebtWise CLI tool",
		Long:  `A command line interface for interacting with the DebtWise API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the DebtWise API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("DEBTWISE_TOKEN"), "Bearer token (defaults to DEBTWISE_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Authenticate and print a token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			login(args[0], args[1])
		},
	}
	rootCmd.AddCommand(loginCmd)

	debtsCmd := &cobra.Command{
		Use:   "debts",
		Short: "Debt operations",
	}
	debtsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List debts in snowball order",
		Run: func(cmd *cobra.Command, args []string) {
			listDebts()
		},
	})
	debtsCmd.AddCommand(&cobra.Command{
		Use:   "reorder",
		Short: "Recompute snowball positions",
		Run: func(cmd *cobra.Command, args []string) {
			reorderDebts()
		},
	})
	rootCmd.AddCommand(debtsCmd)

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Repayment plan operations",
	}
	planCmd.AddCommand(&cobra.Command{
		Use:   "projection",
		Short: "Show the debt-free-date projection",
		Run: func(cmd *cobra.Command, args []string) {
			showProjection()
		},
	})
	planCmd.AddCommand(&cobra.Command{
		Use:   "schedule",
		Short: "Show this month's payment schedule",
		Run: func(cmd *cobra.Command, args []string) {
			showSchedule()
		},
	})
	rootCmd.AddCommand(planCmd)

	stageCmd := &cobra.Command{
		Use:   "stage",
		Short: "Show the current financial progress stage",
		Run: func(cmd *cobra.Command, args []string) {
			showStage()
		},
	}
	rootCmd.AddCommand(stageCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func apiRequest(method, path string, body any) map[string]any {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	return result
}

func login(email, password string) {
	result := apiRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	fmt.Printf("%s\n", result["token"])
}

func listDebts() {
	result := apiRequest(http.MethodGet, "/api/v1/debts", nil)
	printDebts(result)
}

func reorderDebts() {
	result := apiRequest(http.MethodPost, "/api/v1/debts/reorder", nil)
	printDebts(result)
}

func printDebts(result map[string]any) {
	debts, _ := result["debts"].([]any)
	fmt.Printf("%-4s %-24s %12s %10s %6s\n", "POS", "NAME", "BALANCE", "MINIMUM", "CCJ")
	for _, d := range debts {
		debt, ok := d.(map[string]any)
		if !ok {
			continue
		}
		ccj := ""
		if isCCJ, _ := debt["is_ccj"].(bool); isCCJ {
			ccj = "yes"
		}
		fmt.Printf("%-4v %-24s %12s %10s %6s\n",
			debt["snowball_position"],
			truncate(fmt.Sprintf("%v", debt["name"]), 24),
			debt["balance"],
			debt["minimum_payment"],
			ccj,
		)
	}
}

func showProjection() {
	result := apiRequest(http.MethodGet, "/api/v1/plan/projection", nil)

	feasible, _ := result["feasible"].(bool)
	if !feasible {
		fmt.Println("Plan is not feasible: disposable income does not cover minimum payments")
		return
	}

	fmt.Printf("Debt free date:  %v\n", result["debt_free_date"])
	fmt.Printf("Months to go:    %v\n", result["months_to_debt_free"])
}

func showSchedule() {
	result := apiRequest(http.MethodGet, "/api/v1/plan/schedule", nil)

	fmt.Printf("%-4s %-24s %10s %10s\n", "POS", "NAME", "MINIMUM", "PAYMENT")
	entries, _ := result["entries"].([]any)
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		fmt.Printf("%-4v %-24s %10s %10s\n",
			entry["snowball_position"],
			truncate(fmt.Sprintf("%v", entry["debt_name"]), 24),
			entry["minimum_payment"],
			entry["monthly_payment"],
		)
	}
	fmt.Printf("Total: %s", result["total_monthly_payment"])
	if underfunded, _ := result["underfunded"].(bool); underfunded {
		fmt.Printf("  (exceeds disposable income)")
	}
	fmt.Println()
}

func showStage() {
	result := apiRequest(http.MethodGet, "/api/v1/stages/current", nil)
	fmt.Printf("Stage %v: %v\n", result["stage_number"], result["stage_name"])
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
