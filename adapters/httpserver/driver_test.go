package httpserver_test

import (
	"bulletin/adapters/httpserver"
	"bulletin/domain/services/memory"
	"bulletin/specifications"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestSpecificationsInProcess(t *testing.T) {
	server := httpserver.NewServer(memory.NewStorage())
	server.SetLogger(nil)

	ts := httptest.NewServer(server)
	defer ts.Close()

	driver := &httpserver.Driver{
		BaseURL: ts.URL,
		Client:  ts.Client(),
	}

	specifications.CreatingAPostSpecification(t, driver)
	specifications.ListingPostsSpecification(t, driver)
	specifications.DeletingAPostSpecification(t, driver)
	specifications.HealthSpecification(t, driver)
}

func TestParseArgs(t *testing.T) {
	t.Run("splits on first colon", func(t *testing.T) {
		args, err := httpserver.ParseArgs("title: Test: Post", "author:Someone")
		if err != nil {
			t.Fatalf("unexpected error, %v", err)
		}
		if args["title"] != "Test: Post" {
			t.Errorf("got title %q, want %q", args["title"], "Test: Post")
		}
		if got := args.Get("author", "content"); len(got) != 1 {
			t.Errorf("got %v, want only author", got)
		}
	})

	t.Run("rejects argument without colon", func(t *testing.T) {
		_, err := httpserver.ParseArgs("author: Someone", "title")
		if errors.Cause(err) != httpserver.ErrMalformedArg {
			t.Errorf("got error %v, want %v", err, httpserver.ErrMalformedArg)
		}
	})

	t.Run("driver reports malformed argument", func(t *testing.T) {
		driver := &httpserver.Driver{BaseURL: "http://unused.invalid", Client: http.DefaultClient}
		if _, err := driver.CreateAPost("title"); errors.Cause(err) != httpserver.ErrMalformedArg {
			t.Errorf("got error %v, want %v", err, httpserver.ErrMalformedArg)
		}
	})
}
