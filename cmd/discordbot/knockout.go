/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/bitbracket/bcc"
	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/field"
	"github.com/mikeb26/bitbracket/report"
)

type KnockoutSubCommand string

const (
	KnockoutAboutCmd     KnockoutSubCommand = "about"
	KnockoutHelpCmd      KnockoutSubCommand = "help"
	KnockoutSimulateCmd  KnockoutSubCommand = "simulate"
	KnockoutTranslateCmd KnockoutSubCommand = "translate"
	KnockoutChampionCmd  KnockoutSubCommand = "champion"
)

// discord expects a reply within 3 seconds
const MaxSimulations = 20000

var knockoutSubCmdHdlrs = map[KnockoutSubCommand]CmdHandler{
	KnockoutAboutCmd:     knockoutAboutCmdHandler,
	KnockoutHelpCmd:      knockoutHelpCmdHandler,
	KnockoutSimulateCmd:  knockoutSimulateCmdHandler,
	KnockoutTranslateCmd: knockoutTranslateCmdHandler,
	KnockoutChampionCmd:  knockoutChampionCmdHandler,
}

var errNoField = errors.New("please provide exactly one of teams or eventid")

var bccClient = sync.OnceValue(func() *bcc.Client {
	return bcc.NewClient(context.Background())
})

func knockoutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := knockoutHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := knockoutSubCmdHdlrs[KnockoutSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newEphemeralResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subOptions returns the options of the invoked subcommand by name.
func subOptions(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			opts[opt.Name] = opt
		}
	}
	return opts
}

//go:embed about.txt
var aboutText string

func knockoutAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(aboutText)
	return resp
}

//go:embed help.md
var helpText string

func knockoutHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

// loadField builds a seeded field from either the teams option or the
// eventid and section options.
func loadField(ctx context.Context,
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) ([]field.Entrant,
	error) {

	teamsOpt, hasTeams := opts["teams"]
	eventOpt, hasEvent := opts["eventid"]
	if hasTeams == hasEvent {
		return nil, errNoField
	}

	var entrants []field.Entrant
	var err error
	if hasTeams {
		entrants, err = field.ParseList(teamsOpt.StringValue())
	} else {
		section := ""
		if s, ok := opts["section"]; ok {
			section = s.StringValue()
		}
		entrants, err = field.FromEvent(ctx, bccClient(), eventOpt.IntValue(),
			section)
	}
	if err != nil {
		return nil, err
	}

	top := 0
	if opt, ok := opts["top"]; ok {
		top = int(opt.IntValue())
	}

	return field.Seed(field.Top(entrants, top))
}

func knockoutSimulateCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	opts := subOptions(inter)

	n := bitbracket.DefaultN
	if opt, ok := opts["n"]; ok {
		n = int(opt.IntValue())
	}
	if n > MaxSimulations {
		n = MaxSimulations
	}

	entrants, err := loadField(ctx, opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building field: %v", err)
		log.Printf("discordbot.simulate: %v", resp.Data.Content)
		return resp
	}

	tally, err := bitbracket.SimulateProb(ctx, entrants, field.EloWinProb(), n)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error simulating tournament: %v", err)
		log.Printf("discordbot.simulate: %v", resp.Data.Content)
		return resp
	}

	var sb strings.Builder
	odds, err := report.BuildChampionOddsOutput(tally, entrants)
	if err == nil {
		sb.WriteString(odds)
		sb.WriteString("\n")
		var top string
		top, err = report.BuildTopOutput(tally, entrants, 3)
		sb.WriteString(top)
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building report: %v", err)
		log.Printf("discordbot.simulate: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = codeBlock(sb.String())
	applyBroadcast(resp, opts)

	return resp
}

// loadBracket parses the bb option and builds the field it applies to.
func loadBracket(ctx context.Context,
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (bitbracket.Bitbracket,
	[]field.Entrant, error) {

	opt, ok := opts["bb"]
	if !ok {
		return 0, nil, fmt.Errorf("please provide a bitbracket")
	}
	bb, err := bitbracket.Parse(opt.StringValue())
	if err != nil {
		return 0, nil, err
	}
	entrants, err := loadField(ctx, opts)
	if err != nil {
		return 0, nil, err
	}
	return bb, entrants, nil
}

func knockoutTranslateCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	opts := subOptions(inter)

	bb, entrants, err := loadBracket(ctx, opts)
	if err == nil {
		var out string
		out, err = report.BuildBracketOutput(bb, entrants)
		resp.Data.Content = codeBlock(out)
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error translating bitbracket: %v", err)
		log.Printf("discordbot.translate: %v", resp.Data.Content)
		return resp
	}
	applyBroadcast(resp, opts)

	return resp
}

func knockoutChampionCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	opts := subOptions(inter)

	bb, entrants, err := loadBracket(ctx, opts)
	if err == nil {
		var champion field.Entrant
		champion, err = bitbracket.Champion(bb, entrants)
		resp.Data.Content = fmt.Sprintf("Champion of bitbracket %d: **%v**",
			bb, champion)
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error decoding bitbracket: %v", err)
		log.Printf("discordbot.champion: %v", resp.Data.Content)
		return resp
	}
	applyBroadcast(resp, opts)

	return resp
}

func applyBroadcast(resp *discordgo.InteractionResponse,
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {

	if opt, ok := opts["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}
}

// codeBlock wraps s for monospace formatting in Discord
func codeBlock(s string) string {
	return fmt.Sprintf("```\n%s```", truncateContent(s))
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
