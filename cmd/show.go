package cmd

import (
	"fmt"
	"strconv"

	"minired-cli/api"
	"minired-cli/format"
	"minired-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Mostrar un post con sus comentarios",
	Args:  cobra.ExactArgs(1),
	Run:   show,
}

func show(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("ID de post inválido: %s", args[0])
	}

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error al cargar el post: %v", apiErr.Msg)
	}

	if post == nil {
		fmt.Println("🤷‍♂️ Post no encontrado")
		return
	}

	color.New(color.Bold, term.ColorHiCyan).Println(post.Title)
	color.New(term.ColorHiMagenta).Printf("Por @%s · %s\n", post.Username, format.Date(post.CreatedAt))
	fmt.Println()
	fmt.Println(post.Content)
	fmt.Println()
	fmt.Println(term.GetDivisionLine())

	term.StartSpinner("")
	comments, apiErr := api.Client.ListComments(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error al cargar comentarios: %v", apiErr.Msg)
	}

	if len(comments) == 0 {
		fmt.Println("No hay comentarios todavía. ¡Sé el primero en comentar!")
		return
	}

	color.New(color.Bold).Printf("Comentarios (%d)\n\n", len(comments))
	for _, comment := range comments {
		color.New(term.ColorHiGreen).Printf("@%s", comment.Username)
		fmt.Printf(" · %s\n", format.Ago(comment.CreatedAt))
		fmt.Println(comment.Content)
		fmt.Println()
	}
}
