package httpserver

import "bulletin/domain/entities"

//go:generate easyjson

//easyjson:json
type PostsResponse struct {
	Posts []entities.Post `json:"posts"`
}

//easyjson:json
type DeleteResponse struct {
	Message string        `json:"message"`
	Post    entities.Post `json:"post"`
}

//easyjson:json
type HealthResponse struct {
	Status     string `json:"status"`
	TotalPosts int    `json:"total_posts"`
}

//easyjson:json
type Error struct {
	Detail string `json:"detail"`
}

func NewError(detail string) *Error {
	return &Error{
		Detail: detail,
	}
}
