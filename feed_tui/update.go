package feedtui

import (
	"minired-cli/auth"
	shared "minired-cli/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *feedUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.windowResized(msg.Width, msg.Height)

	case spinner.TickMsg:
		spinnerModel, cmd := m.spinner.Update(msg)
		m.spinner = spinnerModel
		return m, cmd

	case authResultMsg:
		m.authPending = false
		if msg.err != nil {
			m.authErr = apiMsgOr(msg.err, authFallbackError(m.authMode))
			return m, nil
		}
		m.session = msg.user
		m.view = viewList
		m.resetAuthForm()
		return m, m.fetchPosts()

	case postsLoadedMsg:
		if msg.seq != m.postsSeq {
			return m, nil
		}
		m.postsLoading = false
		if msg.err != nil {
			m.postsErr = "Error al cargar posts"
			return m, nil
		}
		m.posts = msg.posts
		m.postsErr = ""
		if m.selectedIdx >= len(m.posts) {
			m.selectedIdx = len(m.posts) - 1
		}
		if m.selectedIdx < 0 {
			m.selectedIdx = 0
		}

	case postLoadedMsg:
		if msg.seq != m.postSeq {
			return m, nil
		}
		m.postLoading = false
		if msg.err != nil {
			m.postErr = "Error al cargar el post"
			return m, nil
		}
		m.post = msg.post
		m.postErr = ""

	case commentsLoadedMsg:
		if msg.seq != m.commentsSeq {
			return m, nil
		}
		m.commentsLoading = false
		if msg.err != nil {
			m.commentsErr = "Error al cargar comentarios"
			return m, nil
		}
		m.comments = msg.comments
		m.commentsErr = ""
		if m.commentIdx >= len(m.comments) {
			m.commentIdx = len(m.comments) - 1
		}
		if m.commentIdx < 0 {
			m.commentIdx = 0
		}

	case postCreatedMsg:
		m.creatingPost = false
		if msg.err != nil {
			m.createPostErr = apiMsgOr(msg.err, "Error al crear post")
			return m, nil
		}
		m.titleInput.Reset()
		m.bodyInput.Reset()
		m.postFormOpen = false
		m.createPostErr = ""
		return m, m.fetchPosts()

	case postDeletedMsg:
		m.deletingPost = false
		if msg.err != nil {
			m.listActionErr = apiMsgOr(msg.err, "Error al eliminar post")
			return m, nil
		}
		// the list is re-fetched rather than filtered locally
		return m, m.fetchPosts()

	case commentCreatedMsg:
		m.commentPending = false
		if msg.err != nil {
			// draft stays put so the user can retry
			m.commentErr = apiMsgOr(msg.err, "Error al crear comentario")
			return m, nil
		}
		m.commentInput.Reset()
		m.commentFormOpen = false
		m.commentErr = ""
		return m, m.fetchComments()

	case commentDeletedMsg:
		if msg.err != nil {
			m.commentActionErr = "Error al eliminar el comentario"
			return m, nil
		}
		// comments are filtered in place, no re-fetch
		filtered := make([]*shared.Comment, 0, len(m.comments))
		for _, c := range m.comments {
			if c.ID != msg.commentId {
				filtered = append(filtered, c)
			}
		}
		m.comments = filtered
		if m.commentIdx >= len(m.comments) && m.commentIdx > 0 {
			m.commentIdx = len(m.comments) - 1
		}
		m.notice = "Comentario eliminado exitosamente"
		return m, m.clearNoticeLater()

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *feedUIModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.view {
	case viewAuth:
		return m.handleAuthKey(msg)
	case viewList:
		return m.handleListKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	}

	return m, nil
}

func (m *feedUIModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubbleKey.Matches(msg, m.keymap.toggleMode):
		m.toggleAuthMode()
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.cycleAuthFocus(1)
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.cycleAuthFocus(-1)
		return m, nil

	case msg.Type == tea.KeyEnter:
		if !m.canSubmitAuth() {
			return m, nil
		}
		return m, m.submitAuth()
	}

	return m, m.updateAuthInputs(msg)
}

func (m *feedUIModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.postFormOpen {
		return m.handlePostFormKey(msg)
	}

	if m.confirmingDeleteId != 0 {
		switch msg.String() {
		case "s", "S", "y", "Y":
			postId := m.confirmingDeleteId
			m.confirmingDeleteId = 0
			return m, m.deletePost(postId)
		case "n", "N", "esc":
			m.confirmingDeleteId = 0
		}
		return m, nil
	}

	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return m, tea.Quit

	case bubbleKey.Matches(msg, m.keymap.logout):
		m.logout()
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case bubbleKey.Matches(msg, m.keymap.down):
		if m.selectedIdx < len(m.posts)-1 {
			m.selectedIdx++
		}

	case bubbleKey.Matches(msg, m.keymap.selectItem):
		post := m.selectedPost()
		if post == nil {
			return m, nil
		}
		m.openDetail(post.ID)
		return m, tea.Batch(m.fetchPost(), m.fetchComments())

	case bubbleKey.Matches(msg, m.keymap.newItem):
		m.postFormOpen = true
		m.postFormFocus = 0
		m.titleInput.Focus()
		m.bodyInput.Blur()

	case bubbleKey.Matches(msg, m.keymap.deleteItem):
		post := m.selectedPost()
		if post != nil && m.owns(post.UserID) {
			m.confirmingDeleteId = post.ID
		}

	case bubbleKey.Matches(msg, m.keymap.refresh):
		return m, m.fetchPosts()
	}

	return m, nil
}

func (m *feedUIModel) handlePostFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.postFormOpen = false
		m.titleInput.Blur()
		m.bodyInput.Blur()
		return m, nil

	case msg.Type == tea.KeyTab:
		m.postFormFocus = (m.postFormFocus + 1) % 2
		if m.postFormFocus == 0 {
			m.titleInput.Focus()
			m.bodyInput.Blur()
		} else {
			m.titleInput.Blur()
			m.bodyInput.Focus()
		}
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.submit):
		if !m.canSubmitPost() {
			return m, nil
		}
		return m, m.submitPost()
	}

	var cmd tea.Cmd
	if m.postFormFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

func (m *feedUIModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentFormOpen {
		return m.handleCommentFormKey(msg)
	}

	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return m, tea.Quit

	case bubbleKey.Matches(msg, m.keymap.logout):
		m.logout()
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.back):
		m.closeDetail()
		// re-fetch covers anything that changed while in detail
		return m, m.fetchPosts()

	case bubbleKey.Matches(msg, m.keymap.comment):
		m.commentFormOpen = true
		m.commentInput.Focus()

	case bubbleKey.Matches(msg, m.keymap.up):
		if m.commentIdx > 0 {
			m.commentIdx--
		}

	case bubbleKey.Matches(msg, m.keymap.down):
		if m.commentIdx < len(m.comments)-1 {
			m.commentIdx++
		}

	case bubbleKey.Matches(msg, m.keymap.deleteItem):
		comment := m.selectedComment()
		if comment != nil && m.owns(comment.UserID) {
			return m, m.deleteComment(comment.ID)
		}

	case bubbleKey.Matches(msg, m.keymap.refresh):
		return m, tea.Batch(m.fetchPost(), m.fetchComments())
	}

	return m, nil
}

func (m *feedUIModel) handleCommentFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		// close but keep the draft
		m.commentFormOpen = false
		m.commentInput.Blur()
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.submit):
		if !m.canSubmitComment() {
			return m, nil
		}
		return m, m.submitComment()
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m *feedUIModel) updateAuthInputs(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.authFocus {
	case 0:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case 1:
		if m.authMode == authModeRegister {
			m.usernameInput, cmd = m.usernameInput.Update(msg)
		} else {
			m.passwordInput, cmd = m.passwordInput.Update(msg)
		}
	case 2:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return cmd
}

func (m *feedUIModel) cycleAuthFocus(delta int) {
	numFields := 2
	if m.authMode == authModeRegister {
		numFields = 3
	}

	m.authFocus = (m.authFocus + delta + numFields) % numFields

	m.emailInput.Blur()
	m.usernameInput.Blur()
	m.passwordInput.Blur()

	switch m.authFocus {
	case 0:
		m.emailInput.Focus()
	case 1:
		if m.authMode == authModeRegister {
			m.usernameInput.Focus()
		} else {
			m.passwordInput.Focus()
		}
	case 2:
		m.passwordInput.Focus()
	}
}

func (m *feedUIModel) toggleAuthMode() {
	if m.authMode == authModeLogin {
		m.authMode = authModeRegister
	} else {
		m.authMode = authModeLogin
		m.usernameInput.Reset()
	}
	m.authErr = ""
	m.authFocus = 0
	m.emailInput.Focus()
	m.usernameInput.Blur()
	m.passwordInput.Blur()
}

func (m *feedUIModel) resetAuthForm() {
	m.emailInput.Reset()
	m.usernameInput.Reset()
	m.passwordInput.Reset()
	m.authMode = authModeLogin
	m.authFocus = 0
	m.authErr = ""
}

func (m *feedUIModel) openDetail(postId int) {
	m.view = viewDetail
	m.selectedPostId = postId
	m.post = nil
	m.postErr = ""
	m.comments = nil
	m.commentIdx = 0
	m.commentsErr = ""
	m.commentActionErr = ""
	m.notice = ""
}

func (m *feedUIModel) closeDetail() {
	m.view = viewList
	m.selectedPostId = 0
	m.post = nil
	m.commentFormOpen = false
	m.commentInput.Blur()
}

// logout resets everything back to the unauthenticated baseline.
func (m *feedUIModel) logout() {
	auth.SignOut()

	m.session = nil
	m.view = viewAuth
	m.selectedPostId = 0
	m.selectedIdx = 0
	m.posts = nil
	m.post = nil
	m.comments = nil
	m.postFormOpen = false
	m.commentFormOpen = false
	m.confirmingDeleteId = 0
	m.postsErr = ""
	m.listActionErr = ""
	m.notice = ""
	m.titleInput.Reset()
	m.bodyInput.Reset()
	m.commentInput.Reset()
	m.resetAuthForm()
	m.emailInput.Focus()
}

func apiMsgOr(err *shared.ApiError, fallback string) string {
	if err != nil && err.Msg != "" {
		return err.Msg
	}
	return fallback
}

func authFallbackError(mode authMode) string {
	if mode == authModeRegister {
		return "Error al registrarse"
	}
	return "Error al iniciar sesión"
}
