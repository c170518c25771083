package tasks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crucial707/taskdeck/cmd/cli/config"
	"github.com/crucial707/taskdeck/cmd/cli/output"
	"github.com/crucial707/taskdeck/cmd/cli/root"
	"github.com/spf13/cobra"
)

type task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ==========================
// CLI Command Init
// ==========================
func init() {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	tasksCmd.AddCommand(
		listTasksCmd(),
		createTaskCmd(),
		completeTaskCmd(),
		deleteTaskCmd(),
	)

	root.GetRoot().AddCommand(tasksCmd)
}

// ==========================
// LIST
// ==========================
func listTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tasks []task
			if err := doRequest("GET", "/tasks", nil, &tasks); err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []interface{}{
					t.ID, t.Title, t.Status, t.Description, t.CreatedAt.Format(time.RFC3339),
				})
			}
			output.RenderTable([]string{"ID", "Title", "Status", "Description", "Created"}, rows)
			return nil
		},
	}
}

// ==========================
// CREATE
// ==========================
func createTaskCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"title":       title,
				"description": description,
			}

			var created task
			if err := doRequest("POST", "/tasks", payload, &created); err != nil {
				return err
			}

			fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "task description")
	return cmd
}

// ==========================
// COMPLETE
// ==========================
func completeTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"status": "completed"}

			var updated task
			if err := doRequest("PUT", "/tasks/"+args[0], payload, &updated); err != nil {
				return err
			}

			fmt.Printf("Task %d marked %s.\n", updated.ID, updated.Status)
			return nil
		},
	}
}

// ==========================
// DELETE
// ==========================
func deleteTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doRequest("DELETE", "/tasks/"+args[0], nil, nil); err != nil {
				return err
			}
			fmt.Printf("Task %s deleted.\n", args[0])
			return nil
		},
	}
}

// doRequest sends an authenticated request (bearer token plus API key) and
// decodes the JSON response into out when out is non-nil.
func doRequest(method, path string, payload, out interface{}) error {
	token, err := config.ReadToken()
	if err != nil {
		return fmt.Errorf("please login first (taskdeck auth login)")
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, config.APIURL()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-API-Key", config.APIKey())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
