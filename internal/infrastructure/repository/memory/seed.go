package memory

import (
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
)

const (
	LeagueSuperLig   = "Süper Lig"
	LeagueTurkishCup = "Türkiye Kupası"
)

// SeedTeams and SeedMatches back the memory repositories when neither a
// database nor an upstream API is configured, so a bare binary still serves
// a populated dashboard.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Galatasaray"},
		{ID: 2, Name: "Fenerbahçe"},
		{ID: 3, Name: "Beşiktaş"},
		{ID: 4, Name: "Trabzonspor"},
		{ID: 5, Name: "Başakşehir"},
		{ID: 6, Name: "Samsunspor"},
	}
}

func SeedMatches() []match.Match {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []match.Match{
		{ID: 101, HomeTeamID: 1, AwayTeamID: 2, FinalScore: "2-1", FirstHalfScore: "1-0", MatchDate: day(2025, time.August, 10), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 102, HomeTeamID: 3, AwayTeamID: 4, FinalScore: "0-0", FirstHalfScore: "0-0", MatchDate: day(2025, time.August, 11), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 103, HomeTeamID: 5, AwayTeamID: 6, FinalScore: "3-2", FirstHalfScore: "2-1", MatchDate: day(2025, time.August, 17), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 104, HomeTeamID: 2, AwayTeamID: 3, FinalScore: "1-1", FirstHalfScore: "0-1", MatchDate: day(2025, time.August, 24), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 105, HomeTeamID: 4, AwayTeamID: 1, FinalScore: "1-3", FirstHalfScore: "0-2", MatchDate: day(2025, time.September, 13), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 106, HomeTeamID: 6, AwayTeamID: 2, FinalScore: "0-4", FirstHalfScore: "0-2", MatchDate: day(2025, time.September, 14), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 107, HomeTeamID: 1, AwayTeamID: 3, FinalScore: "2-2", FirstHalfScore: "1-1", MatchDate: day(2025, time.September, 21), League: LeagueSuperLig, Country: "Türkiye", Season: "2025/2026"},
		{ID: 108, HomeTeamID: 5, AwayTeamID: 4, FinalScore: "1-0", FirstHalfScore: "1-0", MatchDate: day(2025, time.October, 4), League: LeagueTurkishCup, Country: "Türkiye", Season: "2025/2026"},
		{ID: 109, HomeTeamID: 2, AwayTeamID: 1, FinalScore: "0-1", FirstHalfScore: "0-0", MatchDate: day(2025, time.October, 18), League: LeagueTurkishCup, Country: "Türkiye", Season: "2025/2026"},
		{ID: 110, HomeTeamID: 3, AwayTeamID: 6, FinalScore: "3-1", FirstHalfScore: "2-0", MatchDate: day(2025, time.October, 19), League: LeagueTurkishCup, Country: "Türkiye", Season: "2025/2026"},
	}
}
