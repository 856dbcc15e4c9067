package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"showtracker/pkg/client"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

const defaultServerUrl = "http://localhost:3000"

type commandContext struct {
	serverFlag  *string
	sessionFlag *string

	storeOnce sync.Once
	store     *sessionStore
	storeErr  error
}

func newCommandContext(serverFlag, sessionFlag *string) *commandContext {
	return &commandContext{
		serverFlag:  serverFlag,
		sessionFlag: sessionFlag,
	}
}

func (c *commandContext) sessionStore() (*sessionStore, error) {
	c.storeOnce.Do(func() {
		path := strings.TrimSpace(*c.sessionFlag)
		if path == "" {
			path, c.storeErr = defaultSessionPath()
			if c.storeErr != nil {
				return
			}
		}
		c.store = newSessionStore(path)
	})
	return c.store, c.storeErr
}

func (c *commandContext) serverUrl(saved session) string {
	if v := strings.TrimSpace(*c.serverFlag); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("SHOWTRACKER_URL")); v != "" {
		return v
	}
	if saved.ServerUrl != "" {
		return saved.ServerUrl
	}
	return defaultServerUrl
}

// withClient runs fn with a client carrying the saved access token. A 401
// answer triggers one refresh of the token pair and a retry.
func (c *commandContext) withClient(cmd *cobra.Command, fn func(ctx context.Context, api *client.Client) error) error {
	store, err := c.sessionStore()
	if err != nil {
		return err
	}
	saved, err := store.Load()
	if err != nil {
		return err
	}

	api := client.New(c.serverUrl(saved), 15*time.Second)
	api.SetToken(saved.AccessToken)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = fn(ctx, api)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized || saved.RefreshToken == "" {
		return err
	}

	tokens, refreshErr := api.Refresh(ctx, saved.RefreshToken)
	if refreshErr != nil {
		return err
	}
	saved.AccessToken = tokens.AccessToken
	saved.RefreshToken = tokens.RefreshToken
	if err := store.Save(saved); err != nil {
		return err
	}
	return fn(ctx, api)
}

// rememberLogin stores the token pair of the client's last authentication.
func (c *commandContext) rememberLogin(api *client.Client, email string, refreshToken string) error {
	store, err := c.sessionStore()
	if err != nil {
		return err
	}
	saved, err := store.Load()
	if err != nil {
		return err
	}
	saved.ServerUrl = c.serverUrl(saved)
	saved.Email = email
	saved.AccessToken = api.Token()
	saved.RefreshToken = refreshToken
	return store.Save(saved)
}

func (c *commandContext) forgetLogin() error {
	store, err := c.sessionStore()
	if err != nil {
		return err
	}
	saved, err := store.Load()
	if err != nil {
		return err
	}
	saved.AccessToken = ""
	saved.RefreshToken = ""
	return store.Save(saved)
}
