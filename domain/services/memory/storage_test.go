package memory_test

import (
	"bulletin/domain/entities"
	"bulletin/domain/services"
	"bulletin/domain/services/memory"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type stubClock struct {
	t    time.Time
	step time.Duration
}

func (c *stubClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func newTestStorage(step time.Duration) *memory.Storage {
	clock := &stubClock{time.Unix(1700000000, 0), step}
	return memory.NewStorage(memory.WithClock(clock.Now))
}

func TestStorePost(t *testing.T) {
	t.Run("assigns increasing ids and stamps creation time", func(t *testing.T) {
		storage := newTestStorage(time.Second)

		first := mustStore(t, storage, "a", "t1", "c1")
		second := mustStore(t, storage, "b", "t2", "c2")

		assertId(t, first.Id, 1)
		assertId(t, second.Id, 2)

		if first.Timestamp != 1700000000 {
			t.Errorf("got timestamp %v, want %v", first.Timestamp, 1700000000.0)
		}
		if second.Author != "b" || second.Title != "t2" || second.Content != "c2" {
			t.Errorf("stored post doesn't match input, got %+v", second)
		}
	})

	t.Run("never reuses ids after deletion", func(t *testing.T) {
		storage := newTestStorage(time.Second)

		mustStore(t, storage, "a", "t1", "c1")
		last := mustStore(t, storage, "a", "t2", "c2")

		if _, err := storage.DeletePost(last.Id); err != nil {
			t.Fatalf("unexpected error, %v", err)
		}

		next := mustStore(t, storage, "a", "t3", "c3")
		if next.Id <= last.Id {
			t.Errorf("got id %d, want greater than %d", next.Id, last.Id)
		}
	})
}

func TestGetPosts(t *testing.T) {
	t.Run("empty storage returns empty list", func(t *testing.T) {
		storage := memory.NewStorage()

		got := storage.GetPosts()
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty non-nil list", got)
		}
	})

	t.Run("returns newest first", func(t *testing.T) {
		storage := newTestStorage(time.Millisecond)

		for i := 0; i < 5; i++ {
			mustStore(t, storage, "a", "t", "c")
		}
		if _, err := storage.DeletePost(3); err != nil {
			t.Fatalf("unexpected error, %v", err)
		}
		mustStore(t, storage, "a", "t", "c")

		assertIds(t, storage.GetPosts(), []int64{6, 5, 4, 2, 1})
	})

	t.Run("keeps insertion order on equal timestamps", func(t *testing.T) {
		storage := newTestStorage(0)

		mustStore(t, storage, "a", "t1", "c1")
		mustStore(t, storage, "a", "t2", "c2")
		mustStore(t, storage, "a", "t3", "c3")

		assertIds(t, storage.GetPosts(), []int64{1, 2, 3})
	})

	t.Run("returned list doesn't alias storage", func(t *testing.T) {
		storage := newTestStorage(time.Second)
		mustStore(t, storage, "a", "t1", "c1")

		posts := storage.GetPosts()
		posts[0].Title = "changed"

		got, _ := storage.GetPost(1)
		if got.Title != "t1" {
			t.Errorf("storage was mutated through list, got title %q", got.Title)
		}
	})
}

func TestGetPost(t *testing.T) {
	storage := newTestStorage(time.Second)
	created := mustStore(t, storage, "a", "t1", "c1")

	t.Run("returns stored post", func(t *testing.T) {
		got, err := storage.GetPost(created.Id)
		if err != nil {
			t.Fatalf("unexpected error, %v", err)
		}
		if *got != *created {
			t.Errorf("got %+v, want %+v", *got, *created)
		}
	})

	t.Run("returns not found on missing post", func(t *testing.T) {
		_, err := storage.GetPost(42)
		assertNotFound(t, err)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		storage := newTestStorage(time.Second)

		assertId(t, mustStore(t, storage, "a", "t1", "c1").Id, 1)
		assertId(t, mustStore(t, storage, "b", "t2", "c2").Id, 2)
		assertIds(t, storage.GetPosts(), []int64{2, 1})

		deleted, err := storage.DeletePost(1)
		if err != nil {
			t.Fatalf("unexpected error, %v", err)
		}
		assertId(t, deleted.Id, 1)

		_, err = storage.GetPost(1)
		assertNotFound(t, err)

		if storage.CountPosts() != len(storage.GetPosts()) {
			t.Errorf("count %d doesn't match list length %d", storage.CountPosts(), len(storage.GetPosts()))
		}
	})

	t.Run("returns not found on missing post", func(t *testing.T) {
		storage := memory.NewStorage()

		_, err := storage.DeletePost(1)
		assertNotFound(t, err)
	})

	t.Run("returns not found on second delete", func(t *testing.T) {
		storage := memory.NewStorage()
		created := mustStore(t, storage, "a", "t", "c")

		if _, err := storage.DeletePost(created.Id); err != nil {
			t.Fatalf("unexpected error, %v", err)
		}
		_, err := storage.DeletePost(created.Id)
		assertNotFound(t, err)
	})
}

func TestConcurrentAccess(t *testing.T) {
	storage := memory.NewStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			post, _ := storage.StorePost(entities.NewPostInput("a", "t", "c"))
			storage.GetPosts()
			storage.DeletePost(post.Id)
		}()
	}
	wg.Wait()

	if storage.CountPosts() != 0 {
		t.Errorf("got %d posts, want 0", storage.CountPosts())
	}
	assertId(t, mustStore(t, storage, "a", "t", "c").Id, 51)
}

func mustStore(t testing.TB, storage services.Storage, author, title, content string) *entities.Post {
	t.Helper()

	post, err := storage.StorePost(entities.NewPostInput(author, title, content))
	if err != nil {
		t.Fatalf("unable to store post, %v", err)
	}
	return post
}

func assertId(t testing.TB, got, want int64) {
	t.Helper()

	if got != want {
		t.Errorf("got id %d, want %d", got, want)
	}
}

func assertIds(t testing.TB, posts []entities.Post, want []int64) {
	t.Helper()

	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d", len(posts), len(want))
	}
	for i, p := range posts {
		if p.Id != want[i] {
			t.Errorf("position %d: got id %d, want %d", i, p.Id, want[i])
		}
	}
}

func assertNotFound(t testing.TB, err error) {
	t.Helper()

	if errors.Cause(err) != services.ErrPostNotFound {
		t.Errorf("got error %v, want %v", err, services.ErrPostNotFound)
	}
}
