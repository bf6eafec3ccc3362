package feedtui

import (
	"strings"
	"time"

	"minired-cli/api"
	"minired-cli/auth"
	shared "minired-cli/shared"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeClearDelay = 3 * time.Second

type authResultMsg struct {
	user *shared.User
	err  *shared.ApiError
}

type postsLoadedMsg struct {
	seq   int
	posts []*shared.Post
	err   *shared.ApiError
}

type postLoadedMsg struct {
	seq  int
	post *shared.Post
	err  *shared.ApiError
}

type commentsLoadedMsg struct {
	seq      int
	comments []*shared.Comment
	err      *shared.ApiError
}

type postCreatedMsg struct {
	err *shared.ApiError
}

type postDeletedMsg struct {
	postId int
	err    *shared.ApiError
}

type commentCreatedMsg struct {
	err *shared.ApiError
}

type commentDeletedMsg struct {
	commentId int
	err       *shared.ApiError
}

type clearNoticeMsg struct {
	seq int
}

// Each fetch bumps the collection's sequence number and tags its result
// message with it. Update drops results that aren't the latest issued, so an
// out-of-order resolution can never overwrite newer state.

func (m *feedUIModel) fetchPosts() tea.Cmd {
	m.postsSeq++
	seq := m.postsSeq
	m.postsLoading = true
	m.postsErr = ""
	return func() tea.Msg {
		posts, apiErr := api.Client.ListPosts()
		return postsLoadedMsg{seq: seq, posts: posts, err: apiErr}
	}
}

func (m *feedUIModel) fetchPost() tea.Cmd {
	m.postSeq++
	seq := m.postSeq
	postId := m.selectedPostId
	m.postLoading = true
	m.postErr = ""
	return func() tea.Msg {
		post, apiErr := api.Client.GetPost(postId)
		return postLoadedMsg{seq: seq, post: post, err: apiErr}
	}
}

func (m *feedUIModel) fetchComments() tea.Cmd {
	m.commentsSeq++
	seq := m.commentsSeq
	postId := m.selectedPostId
	m.commentsLoading = true
	m.commentsErr = ""
	return func() tea.Msg {
		comments, apiErr := api.Client.ListComments(postId)
		return commentsLoadedMsg{seq: seq, comments: comments, err: apiErr}
	}
}

func (m *feedUIModel) canSubmitAuth() bool {
	if m.authPending {
		return false
	}
	if strings.TrimSpace(m.emailInput.Value()) == "" || m.passwordInput.Value() == "" {
		return false
	}
	if m.authMode == authModeRegister && strings.TrimSpace(m.usernameInput.Value()) == "" {
		return false
	}
	return true
}

func (m *feedUIModel) submitAuth() tea.Cmd {
	m.authPending = true
	m.authErr = ""

	email := strings.TrimSpace(m.emailInput.Value())
	username := strings.TrimSpace(m.usernameInput.Value())
	password := m.passwordInput.Value()
	mode := m.authMode

	return func() tea.Msg {
		var user *shared.User
		var apiErr *shared.ApiError
		if mode == authModeRegister {
			user, apiErr = auth.Register(email, username, password)
		} else {
			user, apiErr = auth.SignIn(email, password)
		}
		return authResultMsg{user: user, err: apiErr}
	}
}

func (m *feedUIModel) canSubmitPost() bool {
	return !m.creatingPost &&
		strings.TrimSpace(m.titleInput.Value()) != "" &&
		strings.TrimSpace(m.bodyInput.Value()) != ""
}

func (m *feedUIModel) submitPost() tea.Cmd {
	m.creatingPost = true
	m.createPostErr = ""

	req := shared.CreatePostRequest{
		Title:   m.titleInput.Value(),
		Content: m.bodyInput.Value(),
	}

	return func() tea.Msg {
		_, apiErr := api.Client.CreatePost(req)
		return postCreatedMsg{err: apiErr}
	}
}

func (m *feedUIModel) deletePost(postId int) tea.Cmd {
	m.deletingPost = true
	m.listActionErr = ""
	return func() tea.Msg {
		apiErr := api.Client.DeletePost(postId)
		return postDeletedMsg{postId: postId, err: apiErr}
	}
}

func (m *feedUIModel) canSubmitComment() bool {
	return !m.commentPending && strings.TrimSpace(m.commentInput.Value()) != ""
}

func (m *feedUIModel) submitComment() tea.Cmd {
	m.commentPending = true
	m.commentErr = ""

	postId := m.selectedPostId
	req := shared.CreateCommentRequest{Content: m.commentInput.Value()}

	return func() tea.Msg {
		_, apiErr := api.Client.CreateComment(postId, req)
		return commentCreatedMsg{err: apiErr}
	}
}

func (m *feedUIModel) deleteComment(commentId int) tea.Cmd {
	postId := m.selectedPostId
	m.commentActionErr = ""
	return func() tea.Msg {
		apiErr := api.Client.DeleteComment(postId, commentId)
		return commentDeletedMsg{commentId: commentId, err: apiErr}
	}
}

func (m *feedUIModel) clearNoticeLater() tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeClearDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
