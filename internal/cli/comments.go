package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

var commentsCmd = &cobra.Command{
	Use:   "comments [task-id]",
	Short: "List and manage task comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentsList,
}

var commentsAddCmd = &cobra.Command{
	Use:   "add [task-id] [body]",
	Short: "Add a comment to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentsAdd,
}

var commentsReplyCmd = &cobra.Command{
	Use:   "reply [task-id] [comment-id] [body]",
	Short: "Reply to a comment, optionally with attachments",
	Args:  cobra.ExactArgs(3),
	RunE:  runCommentsReply,
}

var commentsReactCmd = &cobra.Command{
	Use:   "react [comment-id] [emoji]",
	Short: "Add an emoji reaction",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentsReact,
}

var commentsUnreactCmd = &cobra.Command{
	Use:   "unreact [comment-id] [emoji]",
	Short: "Remove an emoji reaction",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentsUnreact,
}

func init() {
	commentsCmd.AddCommand(commentsAddCmd)
	commentsCmd.AddCommand(commentsReplyCmd)
	commentsCmd.AddCommand(commentsReactCmd)
	commentsCmd.AddCommand(commentsUnreactCmd)

	commentsAddCmd.Flags().Bool("code", false, "Mark the comment body as code")
	commentsAddCmd.Flags().StringSlice("mention", nil, "Mentioned user id (repeatable)")

	commentsReplyCmd.Flags().Bool("code", false, "Mark the reply body as code")
	commentsReplyCmd.Flags().StringSlice("attach", nil, "Attachment file path (repeatable)")
}

func commentType(code bool) models.CommentType {
	if code {
		return models.CommentCode
	}
	return models.CommentText
}

func runCommentsList(cmd *cobra.Command, args []string) error {
	comments, err := app.api.FetchComments(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Println("No comments.")
		return nil
	}

	for _, c := range comments {
		indent := ""
		if c.ParentID != "" {
			indent = "    "
		}
		fmt.Printf("%s%s [%s] %s\n", indent, c.ID, c.CreatedBy, truncate(c.Body, 100))
		for _, r := range c.Reactions {
			fmt.Printf("%s  %s by %s\n", indent, r.Emoji, r.UserID)
		}
	}
	return nil
}

func runCommentsAdd(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetBool("code")
	mentions, _ := cmd.Flags().GetStringSlice("mention")

	comment, err := app.api.AddComment(cmd.Context(), client.CommentDraft{
		TaskID:   args[0],
		Type:     commentType(code),
		Body:     args[1],
		Mentions: mentions,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added comment %s\n", comment.ID)
	return nil
}

func runCommentsReply(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetBool("code")
	attachments, _ := cmd.Flags().GetStringSlice("attach")

	comment, err := app.api.ReplyComment(cmd.Context(), client.CommentDraft{
		TaskID:          args[0],
		ParentID:        args[1],
		Type:            commentType(code),
		Body:            args[2],
		AttachmentPaths: attachments,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added reply %s\n", comment.ID)
	return nil
}

func runCommentsReact(cmd *cobra.Command, args []string) error {
	if err := app.api.React(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Reaction added.")
	return nil
}

func runCommentsUnreact(cmd *cobra.Command, args []string) error {
	if err := app.api.Unreact(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Reaction removed.")
	return nil
}
