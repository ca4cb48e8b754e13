package main_test

import (
	"bulletin/adapters/httpserver"
	"bulletin/specifications"
	"context"
	"net/http"
	"testing"
	"time"

	xtesting "github.com/xandalm/go-testing"
)

const baseURL = "http://localhost:5000"

// launchServer runs main.go and stops it when the test ends.
func launchServer(t *testing.T, client *http.Client) {
	t.Helper()

	launcher := xtesting.NewServerLauncher(context.Background(), "", "main.go", &xtesting.HTTPServerChecker{
		BaseURL: baseURL,
		Cli:     client,
	})

	if err := launcher.StartAndWait(2 * time.Second); err != nil {
		t.Fatalf("cannot launch server, %v", err)
	}

	t.Cleanup(func() {
		if err := launcher.EndAndClean(); err != nil {
			t.Errorf("cannot graceful end server, %v", err)
		}
	})
}

func TestServer(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	client := &http.Client{Timeout: 2 * time.Second}
	launchServer(t, client)

	driver := &httpserver.Driver{BaseURL: baseURL, Client: client}

	t.Run("create", func(t *testing.T) { specifications.CreatingAPostSpecification(t, driver) })
	t.Run("list", func(t *testing.T) { specifications.ListingPostsSpecification(t, driver) })
	t.Run("delete", func(t *testing.T) { specifications.DeletingAPostSpecification(t, driver) })
	t.Run("health", func(t *testing.T) { specifications.HealthSpecification(t, driver) })
}
