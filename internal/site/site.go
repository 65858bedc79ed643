// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package site holds the static portfolio content: hero, about,
// projects, philosophy, and contact. This is presentation data, not
// persisted state, so it lives in code where edits go through review.
package site

import (
	"fmt"
	"time"
)

// careerStart anchors the experience-duration counter.
const careerStart = 2023

// Profile is the hero/about section content.
type Profile struct {
	Name     string
	Tagline  string
	Headline string
	Summary  string
	Email    string
	GitHub   string
	Location string
}

// Project is a portfolio project card.
type Project struct {
	Title       string
	Client      string
	Description string
	Tags        []string
	GitHub      string // "#" means the source is under NDA
}

// PhilosophyPoint is one entry of the philosophy section.
type PhilosophyPoint struct {
	Title string
	Desc  string
}

// Categories is the suggested category set offered to post editors.
// Open-ended: posts may carry any category, these are only suggestions.
var Categories = []string{
	"Web Development",
	"Blockchain",
	"DeFi",
	"NFT",
	"Smart Contracts",
	"Tutorial",
	"News",
	"Opinion",
	"Books",
	"Life",
}

// Owner is the site profile.
var Owner = Profile{
	Name:     "Anhar Fahrudin",
	Tagline:  "Open to Remote/Onsite • Full-Stack + Blockchain Developer",
	Headline: "ENGINEERING SCALABLE SYSTEMS",
	Summary: "Full-stack software engineer with a backend focus, building " +
		"production-grade systems at the intersection of industrial " +
		"automation and decentralized protocols.",
	Email:    "anharfahrudin21@gmail.com",
	GitHub:   "https://github.com/anharfhdn",
	Location: "Remote",
}

// Projects is the portfolio project list, newest first.
var Projects = []Project{
	{
		Title:       "Trace Bean",
		Client:      "Lisk Builder Challenge: Round 3",
		Description: "Decentralize Supply Chain Coffee Bean Management.",
		Tags:        []string{"Web3", "Solidity", "Smart Contract", "NextJs", "PostgreSQL", "IPFS"},
		GitHub:      "#",
	},
	{
		Title:       "E-Kanban Warehouse System",
		Description: "Migrate Existing Kanban System from EOL Xamarin to Kotlin.",
		Tags:        []string{"Kotlin", "Android", "REST"},
		GitHub:      "#",
	},
	{
		Title:       "PBA Lend",
		Description: "Decentralize Lending And Borrowing Application Bootcamp",
		Tags:        []string{"Web3", "Solidity", "DeFi"},
		GitHub:      "#",
	},
	{
		Title:       "Overall Equipment Effectiveness",
		Description: "Real-time OEE monitoring for production lines.",
		Tags:        []string{"IoT", "PostgreSQL", "Dashboards"},
		GitHub:      "#",
	},
	{
		Title:       "UHF RFID PPE Identification System",
		Description: "RFID-based personal protective equipment tracking.",
		Tags:        []string{"RFID", "Embedded"},
		GitHub:      "https://github.com/anharfhdn/Project-UHF-RFID",
	},
	{
		Title:       "Arduino-Based IC Tester",
		Description: "Logic-gate IC tester built on Arduino.",
		Tags:        []string{"Arduino", "Electronics"},
		GitHub:      "https://github.com/anharfhdn/Arduino-Logic-Gates-Tester",
	},
}

// Philosophy is the philosophy section content.
var Philosophy = []PhilosophyPoint{
	{
		Title: "Everything in One, Guided by Light",
		Desc:  "All skills and experiences move together with purpose, guided by light.",
	},
	{
		Title: "Always Reaching",
		Desc:  "Growth is a choice made every day - the path points toward progress.",
	},
	{
		Title: "Stay Focused",
		Desc:  "The sharp point cuts through distractions - clarity over noise.",
	},
	{
		Title: "Stronger from Stress",
		Desc:  "Under pressure, strength comes from connection and unity, not isolation.",
	},
	{
		Title: "Stay Grounded",
		Desc:  "Balance between career and life isn't a luxury - it's essential.",
	},
}

// ExperienceDuration returns the years of professional experience as a
// display string like "3+".
func ExperienceDuration(now time.Time) string {
	years := now.Year() - careerStart
	if years < 1 {
		years = 1
	}
	return fmt.Sprintf("%d+", years)
}
