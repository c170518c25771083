package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/crucial707/taskdeck/cmd/cli/config"
	"github.com/crucial707/taskdeck/cmd/cli/root"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long: `Register or login a user against the Taskdeck API.
Stores the bearer token locally for future commands.`,
	}

	authCmd.AddCommand(signupCmd(), loginCmd(), logoutCmd())
	root.GetRoot().AddCommand(authCmd)
}

// ==========================
// Signup
// ==========================
func signupCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			payload, _ := json.Marshal(map[string]string{
				"username": username,
				"password": password,
			})
			resp, err := http.Post(config.APIURL()+"/signup", "application/json", strings.NewReader(string(payload)))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusCreated {
				b, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("signup failed: %s", string(b))
			}

			fmt.Printf("User %q registered.\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to register")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	return cmd
}

// ==========================
// Login
// ==========================
func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			form := url.Values{"username": {username}, "password": {password}}
			resp, err := http.PostForm(config.APIURL()+"/token", form)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				b, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("login failed: %s", string(b))
			}

			var out struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.AccessToken == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}

			if err := config.SaveToken(out.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println("Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

// ==========================
// Logout
// ==========================
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteToken(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
