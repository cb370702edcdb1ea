package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zhubert/postview/internal/api"
	pverrors "github.com/zhubert/postview/internal/errors"
	"github.com/zhubert/postview/internal/session"
)

var (
	commentPost  int
	commentName  string
	commentEmail string
	commentBody  string
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Add or delete comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a comment to a post",
	Long: `Adds a comment to --post. Name, email and body are all required;
whitespace-only values count as missing.

Examples:
  postview comment add --post 1 --name Ada --email ada@example.com --body "Nice post"`,
	Args: cobra.NoArgs,
	RunE: runCommentAdd,
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentDelete,
}

func init() {
	commentAddCmd.Flags().IntVar(&commentPost, "post", 0, "Post ID")
	commentAddCmd.Flags().StringVar(&commentName, "name", "", "Author name")
	commentAddCmd.Flags().StringVar(&commentEmail, "email", "", "Author email")
	commentAddCmd.Flags().StringVar(&commentBody, "body", "", "Comment text")
	commentAddCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON even on a terminal")
	_ = commentAddCmd.MarkFlagRequired("post")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	rootCmd.AddCommand(commentCmd)
}

func runCommentAdd(cmd *cobra.Command, _ []string) error {
	if commentPost <= 0 {
		return pverrors.E(pverrors.Op("cmd.comment.add"), pverrors.KindValidation, "--post must be a positive ID")
	}
	composer := session.ComposerWith(commentName, commentEmail, commentBody)
	if err := composer.Validate(); err != nil {
		return err
	}

	created, err := newBackend().CreateComment(cmd.Context(), composer.Draft(commentPost))
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	return printComments(cmd, []api.Comment{created})
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return pverrors.E(pverrors.Op("cmd.comment.delete"), pverrors.KindValidation, fmt.Sprintf("invalid comment ID %q", args[0]))
	}
	if err := newBackend().DeleteComment(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted comment %d\n", id)
	return nil
}
