package usecase

import (
	"testing"

	"github.com/hoopsight/hoopsight/internal/domain/team"
)

func completedEntry(id string) team.ScheduleEntry {
	return team.ScheduleEntry{GameID: id, Completed: true}
}

func pendingEntry(id string) team.ScheduleEntry {
	return team.ScheduleEntry{GameID: id}
}

func TestRecentGames_NewestFirstCappedAtFive(t *testing.T) {
	t.Parallel()

	entries := []team.ScheduleEntry{
		completedEntry("1"), completedEntry("2"), completedEntry("3"),
		completedEntry("4"), completedEntry("5"),
		pendingEntry("6"), pendingEntry("7"), pendingEntry("8"),
	}

	got := RecentGames(entries)
	want := []string{"5", "4", "3", "2", "1"}
	if len(got) != len(want) {
		t.Fatalf("got %d recent games, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].GameID != want[i] {
			t.Fatalf("recent[%d] = %s, want %s", i, got[i].GameID, want[i])
		}
	}
}

func TestRecentGames_MoreThanFiveCompleted(t *testing.T) {
	t.Parallel()

	var entries []team.ScheduleEntry
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		entries = append(entries, completedEntry(id))
	}

	got := RecentGames(entries)
	want := []string{"7", "6", "5", "4", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %d recent games, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].GameID != want[i] {
			t.Fatalf("recent[%d] = %s, want %s", i, got[i].GameID, want[i])
		}
	}
}

func TestUpcomingGames_ScheduleOrderCappedAtFive(t *testing.T) {
	t.Parallel()

	entries := []team.ScheduleEntry{
		completedEntry("1"), completedEntry("2"),
		pendingEntry("3"), pendingEntry("4"), pendingEntry("5"),
		pendingEntry("6"), pendingEntry("7"), pendingEntry("8"),
	}

	got := UpcomingGames(entries)
	want := []string{"3", "4", "5", "6", "7"}
	if len(got) != len(want) {
		t.Fatalf("got %d upcoming games, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].GameID != want[i] {
			t.Fatalf("upcoming[%d] = %s, want %s", i, got[i].GameID, want[i])
		}
	}
}

func TestDerivations_EmptySchedule(t *testing.T) {
	t.Parallel()

	if got := RecentGames(nil); len(got) != 0 {
		t.Fatalf("RecentGames(nil) returned %d entries", len(got))
	}
	if got := UpcomingGames(nil); len(got) != 0 {
		t.Fatalf("UpcomingGames(nil) returned %d entries", len(got))
	}
}
