/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"github.com/bwmarrin/discordgo"
)

func fieldOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "teams",
			Description: "Comma separated entrants, e.g. Hoy:2210,Brown:1559",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "eventid",
			Description: "Boylston Chess Club event whose entrants form the field",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "section",
			Description: "Section of the event (required for multi-section events)",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "top",
			Description: "Keep only the N highest rated entrants",
			Required:    false,
		},
	}
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func bitbracketOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "bb",
		Description: "Bitbracket, e.g. 5, 0b101 or 0x5",
		Required:    true,
	}
}

func knockoutCommand() *discordgo.ApplicationCommand {
	simulateOpts := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "n",
			Description: "Number of tournaments to simulate (default is 1000)",
			Required:    false,
		},
	}
	simulateOpts = append(simulateOpts, fieldOptions()...)
	simulateOpts = append(simulateOpts, broadcastOption())

	bracketOpts := func() []*discordgo.ApplicationCommandOption {
		opts := []*discordgo.ApplicationCommandOption{bitbracketOption()}
		opts = append(opts, fieldOptions()...)
		return append(opts, broadcastOption())
	}

	return &discordgo.ApplicationCommand{
		Name:        string(KnockoutCmd),
		Description: "Knockout bracket predictions; try /knockout help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(KnockoutHelpCmd),
				Description: "Show usage for knockout",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(KnockoutAboutCmd),
				Description: "Show information about bitbracket",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(KnockoutSimulateCmd),
				Description: "Simulate a knockout among the field and show the likely outcomes",
				Options:     simulateOpts,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(KnockoutTranslateCmd),
				Description: "Show every match recorded by a bitbracket",
				Options:     bracketOpts(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(KnockoutChampionCmd),
				Description: "Show the champion recorded by a bitbracket",
				Options:     bracketOpts(),
			},
		},
	}
}
