package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"messageboard/internal/board"
	"messageboard/internal/models"
	"messageboard/internal/render"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.printNotices()
			view := s.app.View()
			if view.Empty {
				fmt.Fprintln(s.out, view.EmptyText)
				return nil
			}
			cards := view.Cards
			if limit > 0 && limit < len(cards) {
				cards = cards[:limit]
			}
			s.printCards(cards)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n messages (0 shows all)")
	return cmd
}

func newPostCmd(s *session) *cobra.Command {
	var avatar string
	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Post a new message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.printNotices()
			if avatar != "" {
				if err := s.app.Controller.SelectAvatar(avatar); err != nil {
					return fmt.Errorf("%w: %s (choose one of %s)", err, avatar, strings.Join(s.app.Config.Avatars, ", "))
				}
			}

			outcome, err := s.app.Submit(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				var validation *board.ValidationError
				if errors.As(err, &validation) {
					// Already shown as a notice.
					return ErrReported
				}
				return err
			}
			s.printCards(lo.Filter(s.app.View().Cards, func(card render.Card, _ int) bool {
				return card.FullID == outcome.Message.Key()
			}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&avatar, "avatar", "a", "", "avatar for this message")
	return cmd
}

func newReactCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "react <message-id> <reaction>",
		Short: "React to a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.printNotices()
			attempt, err := s.app.React(cmd.Context(), args[0], args[1])
			if attempt == nil {
				if errors.Is(err, board.ErrUnknownReaction) {
					return fmt.Errorf("%w: %s (choose one of %s)", err, args[1], strings.Join(s.app.Config.Reactions, " "))
				}
				return err
			}
			v := attempt.View()
			fmt.Fprintf(s.out, "%s %s %d -> %d (%s)\n", render.ShortID(v.MessageID), v.Reaction, v.Before, v.Displayed, v.Status)
			return err
		},
	}
}

func newStatsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals and messages per hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.printNotices()
			view := s.app.OpenDashboard()

			totals := s.table([]string{s.app.Texts.StatsMessages, s.app.Texts.StatsWords, s.app.Texts.StatsReactions})
			totals.Append([]string{
				strconv.Itoa(view.Stats.TotalMessages),
				strconv.Itoa(view.Stats.TotalWords),
				strconv.Itoa(view.Stats.TotalReactions),
			})
			totals.Render()
			fmt.Fprintln(s.out)

			peak := lo.Max(view.Stats.Hours[:])
			hours := s.table([]string{"Hour", "Count", ""})
			for h, label := range view.Chart.Labels {
				count := view.Stats.Hours[h]
				hours.Append([]string{label, strconv.Itoa(count), bar(count, peak)})
			}
			hours.Render()
			return nil
		},
	}
}

func newAvatarsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "avatars",
		Short: "List selectable avatars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer s.printNotices()
			selected := s.app.Controller.State().Avatar()
			table := s.table([]string{"", "Avatar", "Selected"})
			for _, name := range s.app.Config.Avatars {
				table.Append([]string{models.Glyph(name), name, lo.Ternary(name == selected, "*", "")})
			}
			table.Render()
			return nil
		},
	}
}

// barWidth is the length of the longest histogram bar.
const barWidth = 30

func bar(count, peak int) string {
	if count == 0 || peak == 0 {
		return ""
	}
	n := count * barWidth / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func (s *session) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (s *session) printCards(cards []render.Card) {
	table := s.table([]string{"ID", "", "Time", "Message", "Reactions"})
	for _, card := range cards {
		table.Append([]string{card.FullID, card.AvatarGlyph, card.Time, card.Content, reactions(card.Reactions)})
	}
	table.Render()
}

func reactions(buttons []render.ReactionButton) string {
	parts := lo.Map(buttons, func(b render.ReactionButton, _ int) string {
		text := strings.TrimSpace(b.Label + " " + b.CountText)
		if b.Active {
			return color.Bold.Sprint(text)
		}
		return text
	})
	return strings.Join(parts, "  ")
}
