package services

import (
	"bulletin/domain/entities"
	"errors"
)

var ErrPostNotFound = errors.New("storage: post not found")

type Storage interface {
	GetPosts() []entities.Post
	GetPost(id int64) (*entities.Post, error)
	StorePost(input *entities.PostInput) (*entities.Post, error)
	DeletePost(id int64) (*entities.Post, error)
	CountPosts() int
}
