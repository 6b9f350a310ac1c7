package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/hltv-cal/internal/calendar"
	"github.com/pfrederiksen/hltv-cal/internal/match"
)

func main() {
	// A sample match two days from now
	m := &match.Match{
		ID:         "2370001",
		Team1:      "Astralis",
		Team2:      "Vitality",
		Date:       time.Now().Add(48 * time.Hour).Truncate(time.Hour),
		Tournament: "BLAST Premier, Spring Groups",
		MatchURL:   "https://www.hltv.org/matches/2370001/astralis-vs-vitality-blast-premier-spring-groups",
		BestOf:     3,
	}
	evt := match.ToCalendarEvent(m)

	icsContent := calendar.GenerateICS([]match.CalendarEvent{evt})

	// Write to file (owner read/write only for security)
	filename := calendar.MatchFilename(m)
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or open one of these links in a browser:")
	fmt.Println("   Google: ", calendar.GoogleURL(evt))
	fmt.Println("   Outlook:", calendar.OutlookURL(evt, match.OutlookLive))
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
