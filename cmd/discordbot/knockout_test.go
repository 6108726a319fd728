/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func knockoutInteraction(sub string,
	opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {

	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(KnockoutCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    sub,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func TestKnockoutTranslate(t *testing.T) {
	ctx := context.Background()

	// seeded as A, D, B, C; A beats D, C upsets B, A wins the final
	inter := knockoutInteraction("translate", stringOpt("bb", "0b010"),
		stringOpt("teams", "A,B,C,D"))
	resp := knockoutCmdHandler(ctx, inter)
	if resp == nil || resp.Data == nil {
		t.Fatal("Expected non-nil response data")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("Expected response type %v, got %v",
			discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("Expected an ephemeral response")
	}
	for _, want := range []string{"Semifinals", "A(unrated)  def.  D(unrated)",
		"C(unrated)  def.  B(unrated)", "Champion: A(unrated)"} {
		if !strings.Contains(resp.Data.Content, want) {
			t.Errorf("Expected %q in response, got %q", want, resp.Data.Content)
		}
	}
}

func TestKnockoutChampion(t *testing.T) {
	ctx := context.Background()

	inter := knockoutInteraction("champion", stringOpt("bb", "7"),
		stringOpt("teams", "A:1000,B:1100,C:1200,D:1300"),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name:  "broadcast",
			Type:  discordgo.ApplicationCommandOptionBoolean,
			Value: true,
		})
	resp := knockoutCmdHandler(ctx, inter)
	// seeded as D, A, C, B; every underdog wins
	want := "Champion of bitbracket 7: **B(1100)**"
	if resp.Data.Content != want {
		t.Errorf("Expected %q, got %q", want, resp.Data.Content)
	}
	if resp.Data.Flags != 0 {
		t.Errorf("Expected a broadcast response")
	}
}

func TestKnockoutErrors(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		inter *discordgo.Interaction
		want  string
	}{
		{
			name:  "missing field",
			inter: knockoutInteraction("champion", stringOpt("bb", "1")),
			want:  "please provide exactly one of teams or eventid",
		},
		{
			name: "teams and event",
			inter: knockoutInteraction("translate", stringOpt("bb", "1"),
				stringOpt("teams", "A,B"), intOpt("eventid", 1312)),
			want: "please provide exactly one of teams or eventid",
		},
		{
			name: "bad bitbracket",
			inter: knockoutInteraction("translate", stringOpt("bb", "1.5"),
				stringOpt("teams", "A,B")),
			want: "bitbracket should be an integer",
		},
		{
			name: "odd field",
			inter: knockoutInteraction("simulate", intOpt("n", 10),
				stringOpt("teams", "A,B,C")),
			want: "invalid number of teams 3",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := knockoutCmdHandler(ctx, c.inter)
			if !strings.Contains(resp.Data.Content, c.want) {
				t.Errorf("Expected %q in response, got %q", c.want,
					resp.Data.Content)
			}
		})
	}
}

func TestKnockoutSimulate(t *testing.T) {
	ctx := context.Background()

	inter := knockoutInteraction("simulate", intOpt("n", 200),
		stringOpt("teams", "Hoy:2210,Brown:1559,Public:1702,Player:1300"))
	resp := knockoutCmdHandler(ctx, inter)
	for _, want := range []string{"```", "Championship odds:", "Hoy",
		"Most common brackets (200 simulations"} {
		if !strings.Contains(resp.Data.Content, want) {
			t.Errorf("Expected %q in response, got %q", want, resp.Data.Content)
		}
	}
}

func TestKnockoutHelpDefault(t *testing.T) {
	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(KnockoutCmd),
		},
	}
	resp := knockoutCmdHandler(context.Background(), inter)
	if resp.Data.Content != truncateContent(helpText) {
		t.Errorf("Expected help text, got %q", resp.Data.Content)
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	resp, status := dispatch(ctx, &discordgo.Interaction{Type: discordgo.InteractionPing})
	if status != http.StatusOK || resp.Type != discordgo.InteractionResponsePong {
		t.Errorf("Expected pong, got %v %+v", status, resp)
	}

	resp, _ = dispatch(ctx, &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "td"},
	})
	if !strings.Contains(resp.Data.Content, "unknown command 'td'") {
		t.Errorf("Expected unknown command, got %q", resp.Data.Content)
	}

	resp, status = dispatch(ctx, &discordgo.Interaction{
		Type: discordgo.InteractionModalSubmit,
	})
	if resp != nil || status != http.StatusNotImplemented {
		t.Errorf("Expected not implemented, got %v %+v", status, resp)
	}
}

func TestKnockoutCommand(t *testing.T) {
	cmd := knockoutCommand()
	if cmd.Name != string(KnockoutCmd) {
		t.Errorf("Expected command %v, got %v", KnockoutCmd, cmd.Name)
	}
	for _, sub := range cmd.Options {
		if _, ok := knockoutSubCmdHdlrs[KnockoutSubCommand(sub.Name)]; !ok {
			t.Errorf("subcommand %v has no handler", sub.Name)
		}
		// discord rejects required options after optional ones
		optional := false
		for _, opt := range sub.Options {
			if !opt.Required {
				optional = true
			} else if optional {
				t.Errorf("%v: required option %v follows an optional one",
					sub.Name, opt.Name)
			}
		}
	}

	h1, err := cmdRegistrationHash(cmd)
	if err != nil {
		t.Fatalf("hashing command: %v", err)
	}
	h2, _ := cmdRegistrationHash(knockoutCommand())
	if h1 != h2 || len(h1) != 64 {
		t.Errorf("Expected a stable sha256 hash, got %v and %v", h1, h2)
	}
}

func TestTruncateContent(t *testing.T) {
	long := strings.Repeat("x", 3000)
	got := truncateContent(long)
	if len([]rune(got)) != 1988+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("unexpected truncation to %v runes", len([]rune(got)))
	}
	if truncateContent("short") != "short" {
		t.Errorf("short content should be unchanged")
	}
}
