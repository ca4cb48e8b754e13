package memory

import (
	"bulletin/domain/entities"
	"bulletin/domain/services"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Option func(*Storage)

// WithClock replaces the time source used to stamp new posts.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

// Storage keeps posts in insertion order. Ids come from a counter that
// only grows, so a deleted post's id is never handed out again.
type Storage struct {
	mu       sync.RWMutex
	posts_pk int64
	posts    []entities.Post
	now      func() time.Time
}

var _ services.Storage = (*Storage)(nil)

func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		posts_pk: 1,
		posts:    []entities.Post{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPosts returns a copy of the stored posts, newest first.
func (s *Storage) GetPosts() []entities.Post {
	s.mu.RLock()
	posts := make([]entities.Post, len(s.posts))
	copy(posts, s.posts)
	s.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp > posts[j].Timestamp
	})
	return posts
}

func (s *Storage) GetPost(id int64) (*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.Wrapf(services.ErrPostNotFound, "get post %d", id)
	}
	found := s.posts[i]
	return &found, nil
}

func (s *Storage) StorePost(input *entities.PostInput) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := entities.Post{
		Id:        s.posts_pk,
		Author:    input.Author,
		Title:     input.Title,
		Content:   input.Content,
		Timestamp: entities.NewTimestamp(s.now()),
	}
	s.posts = append(s.posts, post)
	s.posts_pk++
	return &post, nil
}

func (s *Storage) DeletePost(id int64) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.Wrapf(services.ErrPostNotFound, "delete post %d", id)
	}
	deleted := s.posts[i]
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return &deleted, nil
}

func (s *Storage) CountPosts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// indexOf expects s.mu to be held.
func (s *Storage) indexOf(id int64) int {
	for i, p := range s.posts {
		if p.Id == id {
			return i
		}
	}
	return -1
}
