package entities

import (
	"errors"

	"github.com/mailru/easyjson/jlexer"
)

//go:generate easyjson

//easyjson:json
type Post struct {
	Id        int64     `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// PostInput is the client supplied part of a post.
//
//easyjson:json
type PostInput struct {
	Author  string `json:"author,required"`
	Title   string `json:"title,required"`
	Content string `json:"content,required"`
}

var ErrNullPostInput = errors.New("post body must be an object, got null")

func NewPostInput(author, title, content string) *PostInput {
	return &PostInput{
		Author:  author,
		Title:   title,
		Content: content,
	}
}

// DecodePostInput is the strict form of PostInput.UnmarshalJSON: the
// generated decoder treats a top-level null as an empty value and skips
// the required keys.
func DecodePostInput(data []byte) (*PostInput, error) {
	in := jlexer.Lexer{Data: data}
	if in.IsNull() {
		return nil, ErrNullPostInput
	}

	var input PostInput
	input.UnmarshalEasyJSON(&in)
	if err := in.Error(); err != nil {
		return nil, err
	}
	return &input, nil
}
