package types

import (
	shared "minired-cli/shared"
)

type ApiClient interface {
	SignIn(req shared.LoginRequest) (*shared.User, *shared.ApiError)
	CreateAccount(req shared.RegisterRequest) (*shared.User, *shared.ApiError)

	ListPosts() ([]*shared.Post, *shared.ApiError)
	GetPost(postId int) (*shared.Post, *shared.ApiError)
	CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	DeletePost(postId int) *shared.ApiError

	ListComments(postId int) ([]*shared.Comment, *shared.ApiError)
	CreateComment(postId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	DeleteComment(postId, commentId int) *shared.ApiError
}
