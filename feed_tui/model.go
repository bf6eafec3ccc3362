package feedtui

import (
	shared "minired-cli/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewId int

const (
	viewAuth viewId = iota
	viewList
	viewDetail
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeRegister
)

type feedUIModel struct {
	session *shared.User
	view    viewId

	width  int
	height int
	ready  bool

	spinner spinner.Model

	// auth screen
	authMode      authMode
	emailInput    textinput.Model
	usernameInput textinput.Model
	passwordInput textinput.Model
	authFocus     int
	authPending   bool
	authErr       string

	// create-post form, shown at the top of the list screen
	postFormOpen  bool
	titleInput    textinput.Model
	bodyInput     textarea.Model
	postFormFocus int
	creatingPost  bool
	createPostErr string

	// post list
	posts              []*shared.Post
	postsLoading       bool
	postsErr           string
	postsSeq           int
	selectedIdx        int
	confirmingDeleteId int
	deletingPost       bool
	listActionErr      string

	// post detail
	selectedPostId int
	post           *shared.Post
	postLoading    bool
	postErr        string
	postSeq        int

	// comments
	comments         []*shared.Comment
	commentsLoading  bool
	commentsErr      string
	commentsSeq      int
	commentIdx       int
	commentFormOpen  bool
	commentInput     textarea.Model
	commentPending   bool
	commentErr       string
	commentActionErr string
	notice           string
	noticeSeq        int

	keymap keymap
}

type keymap = struct {
	up,
	down,
	selectItem,
	back,
	newItem,
	deleteItem,
	refresh,
	toggleMode,
	submit,
	comment,
	logout,
	quit bubbleKey.Binding
}

func (m *feedUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

func initialModel() *feedUIModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	emailInput := textinput.New()
	emailInput.Placeholder = "tu@email.com"
	emailInput.CharLimit = 100
	emailInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "tu_usuario"
	usernameInput.CharLimit = 50

	passwordInput := textinput.New()
	passwordInput.Placeholder = "contraseña"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.CharLimit = 100

	titleInput := textinput.New()
	titleInput.Placeholder = "Escribe un título..."
	titleInput.CharLimit = 200

	bodyInput := textarea.New()
	bodyInput.Placeholder = "¿Qué quieres compartir?"
	bodyInput.SetHeight(5)

	commentInput := textarea.New()
	commentInput.Placeholder = "Escribe tu comentario..."
	commentInput.SetHeight(3)

	initialState := feedUIModel{
		view:          viewAuth,
		spinner:       s,
		emailInput:    emailInput,
		usernameInput: usernameInput,
		passwordInput: passwordInput,
		titleInput:    titleInput,
		bodyInput:     bodyInput,
		commentInput:  commentInput,
		keymap: keymap{
			up: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up", "k"),
				bubbleKey.WithHelp("↑/k", "subir"),
			),

			down: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down", "j"),
				bubbleKey.WithHelp("↓/j", "bajar"),
			),

			selectItem: bubbleKey.NewBinding(
				bubbleKey.WithKeys("enter"),
				bubbleKey.WithHelp("enter", "ver post"),
			),

			back: bubbleKey.NewBinding(
				bubbleKey.WithKeys("esc"),
				bubbleKey.WithHelp("esc", "volver"),
			),

			newItem: bubbleKey.NewBinding(
				bubbleKey.WithKeys("n"),
				bubbleKey.WithHelp("n", "nuevo post"),
			),

			deleteItem: bubbleKey.NewBinding(
				bubbleKey.WithKeys("d"),
				bubbleKey.WithHelp("d", "eliminar"),
			),

			refresh: bubbleKey.NewBinding(
				bubbleKey.WithKeys("r"),
				bubbleKey.WithHelp("r", "recargar"),
			),

			toggleMode: bubbleKey.NewBinding(
				bubbleKey.WithKeys("ctrl+t"),
				bubbleKey.WithHelp("ctrl+t", "cambiar modo"),
			),

			submit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("ctrl+s"),
				bubbleKey.WithHelp("ctrl+s", "publicar"),
			),

			comment: bubbleKey.NewBinding(
				bubbleKey.WithKeys("c"),
				bubbleKey.WithHelp("c", "comentar"),
			),

			logout: bubbleKey.NewBinding(
				bubbleKey.WithKeys("ctrl+l"),
				bubbleKey.WithHelp("ctrl+l", "cerrar sesión"),
			),

			quit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("q", "ctrl+c"),
				bubbleKey.WithHelp("q", "salir"),
			),
		},
	}

	return &initialState
}

func (m *feedUIModel) selectedPost() *shared.Post {
	if len(m.posts) == 0 || m.selectedIdx < 0 || m.selectedIdx >= len(m.posts) {
		return nil
	}
	return m.posts[m.selectedIdx]
}

func (m *feedUIModel) selectedComment() *shared.Comment {
	if len(m.comments) == 0 || m.commentIdx < 0 || m.commentIdx >= len(m.comments) {
		return nil
	}
	return m.comments[m.commentIdx]
}

// owns reports whether the current session owns an item. Delete affordances
// are only shown for owned items; the server enforces the same rule.
func (m *feedUIModel) owns(userId int) bool {
	return m.session != nil && m.session.ID == userId
}
