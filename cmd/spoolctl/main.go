package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spoolsim/spoolsim/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "spoolctl",
	Short: "Control a running spoolsim server",
}

var serverAddr string

var (
	addPages    int
	addPriority int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "spoolsim server address")
	addCmd.Flags().IntVar(&addPages, "pages", 0, "page count of the job")
	addCmd.Flags().IntVar(&addPriority, "priority", 0, "priority of the job (lower = higher priority)")
	_ = addCmd.MarkFlagRequired("pages")
	_ = addCmd.MarkFlagRequired("priority")
	rootCmd.AddCommand(addCmd, queueCmd, simulateCmd, policiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// apiError mirrors the server's error envelope.
type apiError struct {
	Error string `json:"error"`
}

func decodeOrFail(resp *http.Response, out any) {
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			log.Fatalf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		log.Fatalf("server error: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode response: %v", err)
	}
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a print job to the queue",
	Example: `
# Add a 50-page job at priority 2
spoolctl add --pages 50 --priority 2`,
	Run: func(cmd *cobra.Command, args []string) {
		body, _ := json.Marshal(domain.SubmitRequest{PageCount: addPages, Priority: addPriority})
		resp, err := http.Post(serverAddr+"/api/v1/jobs", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatal(err)
		}
		var result domain.SubmitResponse
		decodeOrFail(resp, &result)
		fmt.Printf("Added job %d (%d pages, priority %d). Queue now holds %d job(s).\n",
			result.Job.ID, result.Job.PageCount, result.Job.Priority, result.QueueLen)
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Display the current queue in arrival order",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverAddr + "/api/v1/jobs")
		if err != nil {
			log.Fatal(err)
		}
		var result struct {
			Jobs  []domain.Job `json:"jobs"`
			Count int          `json:"count"`
		}
		decodeOrFail(resp, &result)

		if result.Count == 0 {
			fmt.Println("The print queue is currently empty.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "JOB ID\tPAGES\tPRIORITY")
		for _, job := range result.Jobs {
			fmt.Fprintf(w, "%d\t%d\t%d\n", job.ID, job.PageCount, job.Priority)
		}
		w.Flush()
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [policy]",
	Short: "Run a scheduling simulation (fcfs, sjf, or priority)",
	Example: `
# Compare disciplines over the same queue
spoolctl simulate fcfs
spoolctl simulate sjf
spoolctl simulate priority`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Post(serverAddr+"/api/v1/simulations/"+args[0], "application/json", nil)
		if err != nil {
			log.Fatal(err)
		}
		var report domain.Report
		decodeOrFail(resp, &report)

		fmt.Printf("Simulation results: %s\n", report.Policy.DisplayName())
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "JOB ID\tPAGES\tPRIORITY\tWAIT\tTURNAROUND")
		for _, rec := range report.Jobs {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n",
				rec.JobID, rec.PageCount, rec.Priority, rec.WaitTime, rec.TurnaroundTime)
		}
		w.Flush()
		fmt.Printf("Average waiting time:    %.2f\n", report.AvgWaitTime)
		fmt.Printf("Average turnaround time: %.2f\n", report.AvgTurnaroundTime)
	},
}

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the supported scheduling disciplines",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverAddr + "/api/v1/policies")
		if err != nil {
			log.Fatal(err)
		}
		var result struct {
			Policies []domain.PolicyInfo `json:"policies"`
		}
		decodeOrFail(resp, &result)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDISPLAY NAME\tDESCRIPTION")
		for _, p := range result.Policies {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.DisplayName, p.Description)
		}
		w.Flush()
	},
}
