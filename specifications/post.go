package specifications

import (
	"bulletin/domain/entities"
	"bulletin/domain/services"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

type CreatePostAction interface {
	CreateAPost(args ...string) (*entities.Post, error)
}

type PostBoard interface {
	CreatePostAction
	ListPosts() ([]entities.Post, error)
	GetPost(id int64) (*entities.Post, error)
	DeletePost(id int64) (*entities.Post, error)
	CountPosts() (int, error)
}

func CreatingAPostSpecification(t testing.TB, driver CreatePostAction) {
	got, err := driver.CreateAPost("title: Test Post", "content: Some content", "author: Someone")
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	want := entities.Post{
		Title:   "Test Post",
		Content: "Some content",
		Author:  "Someone",
	}
	assertPostsCanBeTheSame(t, *got, want)

	if got.Id < 1 {
		t.Errorf("got id %d, want positive id", got.Id)
	}
	if got.Timestamp <= 0 {
		t.Errorf("got timestamp %v, want it stamped by the server", got.Timestamp)
	}
}

func ListingPostsSpecification(t testing.TB, driver PostBoard) {
	first := mustCreate(t, driver, "first")
	second := mustCreate(t, driver, "second")

	if second.Id <= first.Id {
		t.Fatalf("got id %d after %d, want increasing ids", second.Id, first.Id)
	}

	posts, err := driver.ListPosts()
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	assertNewestFirst(t, posts)

	if indexOf(posts, second.Id) > indexOf(posts, first.Id) {
		t.Errorf("post %d listed before newer post %d", first.Id, second.Id)
	}
}

func DeletingAPostSpecification(t testing.TB, driver PostBoard) {
	created := mustCreate(t, driver, "to delete")

	deleted, err := driver.DeletePost(created.Id)
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	assertPostsCanBeTheSame(t, *deleted, *created)

	if _, err := driver.GetPost(created.Id); errors.Cause(err) != services.ErrPostNotFound {
		t.Errorf("got error %v fetching deleted post, want %v", err, services.ErrPostNotFound)
	}
	if _, err := driver.DeletePost(created.Id); errors.Cause(err) != services.ErrPostNotFound {
		t.Errorf("got error %v deleting twice, want %v", err, services.ErrPostNotFound)
	}

	next := mustCreate(t, driver, "after delete")
	if next.Id <= created.Id {
		t.Errorf("got id %d after deleting %d, ids must not be reused", next.Id, created.Id)
	}
}

func HealthSpecification(t testing.TB, driver PostBoard) {
	mustCreate(t, driver, "health")

	count, err := driver.CountPosts()
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	posts, err := driver.ListPosts()
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	if count != len(posts) {
		t.Errorf("health reports %d posts but list has %d", count, len(posts))
	}
}

func mustCreate(t testing.TB, driver CreatePostAction, title string) *entities.Post {
	t.Helper()

	post, err := driver.CreateAPost("title: "+title, "content: Some content", "author: Someone")
	if err != nil {
		t.Fatalf("unable to create post, %v", err)
	}
	return post
}

func indexOf(posts []entities.Post, id int64) int {
	for i, p := range posts {
		if p.Id == id {
			return i
		}
	}
	return -1
}

func assertNewestFirst(t testing.TB, posts []entities.Post) {
	t.Helper()

	for i := 1; i < len(posts); i++ {
		if posts[i-1].Timestamp < posts[i].Timestamp {
			t.Fatalf("post %d listed before newer post %d", posts[i-1].Id, posts[i].Id)
		}
	}
}

func assertPostsCanBeTheSame(t testing.TB, got, want entities.Post) {
	t.Helper()

	fn := func(p entities.Post) string {
		return fmt.Sprintf("{title=%s, content=%s, author=%s}", p.Title, p.Content, p.Author)
	}

	if got.Title != want.Title || got.Content != want.Content || got.Author != want.Author {
		t.Fatalf("got post %s, but want %s", fn(got), fn(want))
	}
}
