package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zhubert/postview/internal/api"
	pverrors "github.com/zhubert/postview/internal/errors"
)

var (
	userLimit    int
	postsUser    int
	commentsPost int
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	Long: `Lists the users the backend knows about, capped at --limit
(default from user_limit in the config).`,
	Args: cobra.NoArgs,
	RunE: runUsers,
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List a user's posts",
	Args:  cobra.NoArgs,
	RunE:  runPosts,
}

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "List the comments on a post",
	Args:  cobra.NoArgs,
	RunE:  runComments,
}

func init() {
	for _, c := range []*cobra.Command{usersCmd, postsCmd, commentsCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON even on a terminal")
		rootCmd.AddCommand(c)
	}
	usersCmd.Flags().IntVar(&userLimit, "limit", 0, "Maximum number of users to print")
	postsCmd.Flags().IntVar(&postsUser, "user", 0, "User ID")
	commentsCmd.Flags().IntVar(&commentsPost, "post", 0, "Post ID")
	_ = postsCmd.MarkFlagRequired("user")
	_ = commentsCmd.MarkFlagRequired("post")
}

func runUsers(cmd *cobra.Command, _ []string) error {
	users, err := newBackend().ListUsers(cmd.Context())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	limit := cfg.UserLimit
	if userLimit > 0 {
		limit = userLimit
	}
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{strconv.Itoa(u.ID), u.Name, u.Username, u.Email}
	}
	return printResult(cmd.OutOrStdout(), users, []string{"ID", "Name", "Username", "Email"}, rows)
}

func runPosts(cmd *cobra.Command, _ []string) error {
	if postsUser <= 0 {
		return pverrors.E(pverrors.Op("cmd.posts"), pverrors.KindValidation, "--user must be a positive ID")
	}
	posts, err := newBackend().ListPosts(cmd.Context(), postsUser)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{strconv.Itoa(p.ID), p.Title}
	}
	return printResult(cmd.OutOrStdout(), posts, []string{"ID", "Title"}, rows)
}

func runComments(cmd *cobra.Command, _ []string) error {
	if commentsPost <= 0 {
		return pverrors.E(pverrors.Op("cmd.comments"), pverrors.KindValidation, "--post must be a positive ID")
	}
	comments, err := newBackend().ListComments(cmd.Context(), commentsPost)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	return printComments(cmd, comments)
}

func printComments(cmd *cobra.Command, comments []api.Comment) error {
	rows := make([][]string, len(comments))
	for i, c := range comments {
		rows[i] = []string{strconv.Itoa(c.ID), c.Name, c.Email, c.Body}
	}
	return printResult(cmd.OutOrStdout(), comments, []string{"ID", "Name", "Email", "Body"}, rows)
}
