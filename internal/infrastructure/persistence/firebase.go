package persistence

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// NewFirebaseClient initializes the Firebase app once at process start and
// returns the realtime database client. The client is shared by all
// requests for the lifetime of the process.
func NewFirebaseClient(ctx context.Context, databaseURL, credentialsFile string) (*db.Client, error) {
	conf := &firebase.Config{
		DatabaseURL: databaseURL,
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect realtime database: %w", err)
	}

	return client, nil
}
