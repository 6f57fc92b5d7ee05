package cli

import (
	"context"
	"fmt"
)

// RunLogin authenticates against the sheet gateway and stores the session.
func (c *Cli) RunLogin(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		username, err = readLine("Username: ")
		if err != nil {
			return err
		}
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.authService.Login(ctx, username, password); err != nil {
		return err
	}

	fmt.Printf("✓ Logged in as %s\n", username)
	return nil
}

// RunLogout removes the stored session.
func (c *Cli) RunLogout(ctx context.Context, args []string) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Logged out")
	return nil
}
