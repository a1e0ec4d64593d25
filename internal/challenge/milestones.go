// Package challenge holds the pure derivation engine for the step challenge:
// milestones, raffle tickets, dense ranking, streaks, badges, rank changes and
// team aggregation. Every function here is a total, deterministic transform
// over its arguments; persistence and HTTP concerns live elsewhere.
package challenge

import "github.com/jlouisugbo/walking-challenge/internal/models"

// Cumulative milestone thresholds (steps).
const (
	Milestone150K = 150000
	Milestone225K = 225000
	Milestone300K = 300000
)

// StreakThreshold is the daily step count that keeps a streak alive.
const StreakThreshold = 10000

// Weekly70KPerTicket is how many weekly 70k achievements earn one bonus ticket.
const Weekly70KPerTicket = 4

// Milestones reports which cumulative milestones a step total has reached.
func Milestones(steps int) models.MilestoneStatus {
	return models.MilestoneStatus{
		Reached150K: steps >= Milestone150K,
		Reached225K: steps >= Milestone225K,
		Reached300K: steps >= Milestone300K,
	}
}

// RaffleTickets returns the raffle tickets earned: one per milestone crossed,
// plus one bonus ticket per four weekly 70k achievements.
func RaffleTickets(steps, weekly70kCount int) int {
	tickets := 0
	if steps >= Milestone150K {
		tickets++
	}
	if steps >= Milestone225K {
		tickets++
	}
	if steps >= Milestone300K {
		tickets++
	}
	if weekly70kCount > 0 {
		tickets += weekly70kCount / Weekly70KPerTicket
	}
	return tickets
}

// Progress returns the percentage of the goal covered, capped at 100.
func Progress(steps, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	percent := float64(steps) / float64(goal) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
