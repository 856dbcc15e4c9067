package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// NewAuthClient builds a Firebase Auth client for ID-token verification.
// An empty credentialsFile falls back to application default credentials.
func NewAuthClient(ctx context.Context, projectId string, credentialsFile string) (*auth.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectId}, opts...)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}
