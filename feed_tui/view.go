package feedtui

import (
	"fmt"
	"strings"

	"minired-cli/format"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var borderColor = lipgloss.Color("#444")
var helpTextColor = lipgloss.Color("#ddd")
var dimTextColor = lipgloss.Color("#888")

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var dimStyle = lipgloss.NewStyle().Foreground(dimTextColor)
var selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
var cardStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(borderColor).
	PaddingLeft(1)

func (m *feedUIModel) View() string {
	if !m.ready {
		return ""
	}

	switch m.view {
	case viewAuth:
		return m.renderAuth()
	case viewDetail:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.renderDetail(),
			m.renderHelp(),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.renderList(),
			m.renderHelp(),
		)
	}
}

func (m *feedUIModel) renderHeader() string {
	title := headerStyle.Render("🚀 Mini Red Social")
	if m.session == nil {
		return title
	}

	greeting := fmt.Sprintf("Hola, @%s", m.session.Username)
	logout := dimStyle.Render("(ctrl+l) Cerrar Sesión")

	style := lipgloss.NewStyle().
		Width(m.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(borderColor)

	return style.Render(title + "  " + greeting + "  " + logout)
}

func (m *feedUIModel) renderAuth() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("🚀 Mini Red Social"))
	b.WriteString("\n\n")

	if m.authMode == authModeRegister {
		b.WriteString(selectedStyle.Render("Registrarse"))
	} else {
		b.WriteString(selectedStyle.Render("Iniciar Sesión"))
	}
	b.WriteString("\n\n")

	b.WriteString("Email:\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n\n")

	if m.authMode == authModeRegister {
		b.WriteString("Username:\n")
		b.WriteString(m.usernameInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString("Password:\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")

	if m.authErr != "" {
		b.WriteString(errorStyle.Render(m.authErr))
		b.WriteString("\n\n")
	}

	if m.authPending {
		b.WriteString(m.spinner.View())
		b.WriteString(" Entrando...")
	} else {
		submitLabel := "Iniciar Sesión"
		toggleHint := "¿No tienes cuenta? Regístrate"
		if m.authMode == authModeRegister {
			submitLabel = "Registrarse"
			toggleHint = "¿Ya tienes cuenta? Inicia sesión"
		}

		submit := fmt.Sprintf("(enter) %s", submitLabel)
		if !m.canSubmitAuth() {
			submit = dimStyle.Render(submit)
		}
		b.WriteString(submit)
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(ctrl+t) %s", toggleHint)))
	}

	return b.String()
}

func (m *feedUIModel) renderList() string {
	var sections []string

	if m.postFormOpen {
		sections = append(sections, m.renderPostForm())
	}

	sections = append(sections, m.renderPosts())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *feedUIModel) renderPostForm() string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render("Crear Nuevo Post"))
	b.WriteString("\n\n")
	b.WriteString("Título:\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString("Contenido:\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n\n")

	if m.createPostErr != "" {
		b.WriteString(errorStyle.Render(m.createPostErr))
		b.WriteString("\n")
	}

	if m.creatingPost {
		b.WriteString(m.spinner.View())
		b.WriteString(" Publicando...")
	} else {
		submit := "(ctrl+s) Publicar Post"
		if !m.canSubmitPost() {
			submit = dimStyle.Render(submit)
		}
		b.WriteString(submit)
	}
	b.WriteString("\n")

	return b.String()
}

func (m *feedUIModel) renderPosts() string {
	if m.postsLoading {
		return "\n " + m.spinner.View() + " Cargando posts..."
	}

	if m.postsErr != "" {
		return "\n" + errorStyle.Render(m.postsErr)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(selectedStyle.Render("Posts"))
	b.WriteString("\n\n")

	if m.listActionErr != "" {
		b.WriteString(errorStyle.Render(m.listActionErr))
		b.WriteString("\n\n")
	}

	if len(m.posts) == 0 {
		b.WriteString("No hay posts todavía. ¡Crea el primero!")
		b.WriteString("\n")
		return b.String()
	}

	for i := range m.posts {
		b.WriteString(m.renderPostCard(i))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *feedUIModel) renderPostCard(idx int) string {
	post := m.posts[idx]

	title := post.Title
	if idx == m.selectedIdx {
		title = selectedStyle.Render("› " + title)
	}

	meta := dimStyle.Render(fmt.Sprintf("por @%s · %s", post.Username, format.Date(post.CreatedAt)))

	lines := []string{title + "  " + meta}

	content := wordwrap.String(post.Content, m.contentWidth())
	lines = append(lines, content)

	if m.confirmingDeleteId == post.ID {
		lines = append(lines, errorStyle.Render("¿Estás seguro de eliminar este post? (s)í | (n)o"))
	} else if m.owns(post.UserID) {
		lines = append(lines, dimStyle.Render("(d) Eliminar"))
	}

	if m.deletingPost && m.confirmingDeleteId == 0 && idx == m.selectedIdx {
		lines = append(lines, m.spinner.View()+" Eliminando...")
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *feedUIModel) renderDetail() string {
	if m.postLoading {
		return "\n " + m.spinner.View() + " Cargando post..."
	}

	if m.postErr != "" || m.post == nil {
		msg := m.postErr
		if msg == "" {
			msg = "Post no encontrado"
		}
		return "\n" + errorStyle.Render(msg) + "\n\n" + dimStyle.Render("(esc) Volver")
	}

	var sections []string

	var b strings.Builder
	b.WriteString(dimStyle.Render("← Volver (esc)"))
	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render(m.post.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Por @%s · %s", m.post.Username, format.Date(m.post.CreatedAt))))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(m.post.Content, m.contentWidth()))
	b.WriteString("\n")
	sections = append(sections, b.String())

	if m.commentFormOpen {
		sections = append(sections, m.renderCommentForm())
	}

	sections = append(sections, m.renderComments())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *feedUIModel) renderCommentForm() string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render("Agregar Comentario"))
	b.WriteString("\n")
	b.WriteString(m.commentInput.View())
	b.WriteString("\n")

	if m.commentErr != "" {
		b.WriteString(errorStyle.Render(m.commentErr))
		b.WriteString("\n")
	}

	if m.commentPending {
		b.WriteString(m.spinner.View())
		b.WriteString(" Publicando...")
	} else {
		submit := "(ctrl+s) Comentar"
		if !m.canSubmitComment() {
			submit = dimStyle.Render(submit)
		}
		b.WriteString(submit)
	}
	b.WriteString("\n")

	return b.String()
}

func (m *feedUIModel) renderComments() string {
	if m.commentsLoading {
		return "\n " + m.spinner.View() + " Cargando comentarios..."
	}

	if m.commentsErr != "" {
		return "\n" + errorStyle.Render(m.commentsErr)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(selectedStyle.Render(fmt.Sprintf("Comentarios (%d)", len(m.comments))))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	if m.commentActionErr != "" {
		b.WriteString(errorStyle.Render(m.commentActionErr))
		b.WriteString("\n\n")
	}

	if len(m.comments) == 0 {
		b.WriteString("No hay comentarios todavía. ¡Sé el primero en comentar!")
		b.WriteString("\n")
		return b.String()
	}

	for i := range m.comments {
		b.WriteString(m.renderCommentCard(i))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *feedUIModel) renderCommentCard(idx int) string {
	comment := m.comments[idx]

	author := fmt.Sprintf("@%s", comment.Username)
	if idx == m.commentIdx {
		author = selectedStyle.Render("› " + author)
	}

	meta := dimStyle.Render(format.Date(comment.CreatedAt))

	header := author + "  " + meta
	if m.owns(comment.UserID) {
		header += "  " + dimStyle.Render("(d) Eliminar")
	}

	content := wordwrap.String(comment.Content, m.contentWidth())

	return cardStyle.Render(header + "\n" + content)
}

func (m *feedUIModel) renderHelp() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Foreground(helpTextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor)

	switch {
	case m.view == viewList && m.postFormOpen:
		return style.Render(" (tab) campo • (ctrl+s) publicar • (esc) cancelar")
	case m.view == viewList:
		return style.Render(" (↑/↓) mover • (enter) ver post • (n) nuevo • (d) eliminar • (r) recargar • (q) salir")
	case m.view == viewDetail && m.commentFormOpen:
		return style.Render(" (ctrl+s) comentar • (esc) cancelar")
	case m.view == viewDetail:
		return style.Render(" (↑/↓) mover • (c) comentar • (d) eliminar • (r) recargar • (esc) volver")
	}

	return style.Render("")
}

func (m *feedUIModel) contentWidth() int {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	if width > 100 {
		width = 100
	}
	return width
}

func (m *feedUIModel) windowResized(w, h int) {
	m.width = w
	m.height = h
	m.ready = true

	inputWidth := m.contentWidth()
	m.emailInput.Width = inputWidth
	m.usernameInput.Width = inputWidth
	m.passwordInput.Width = inputWidth
	m.titleInput.Width = inputWidth
	m.bodyInput.SetWidth(inputWidth)
	m.commentInput.SetWidth(inputWidth)
}
