package cmd

import (
	"fmt"
	"os"
	"strconv"

	"minired-cli/api"
	"minired-cli/format"
	"minired-cli/term"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(postsCmd)
}

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ls"},
	Short:   "Listar todos los posts",
	Run:     posts,
}

func posts(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	posts, apiErr := api.Client.ListPosts()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error al cargar posts: %v", apiErr.Msg)
	}

	if len(posts) == 0 {
		fmt.Println("🤷‍♂️ No hay posts todavía. ¡Crea el primero!")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Título", "Autor", "Fecha"})
	for _, post := range posts {
		table.Append([]string{
			strconv.Itoa(post.ID),
			post.Title,
			"@" + post.Username,
			format.Ago(post.CreatedAt),
		})
	}
	table.Render()
}
