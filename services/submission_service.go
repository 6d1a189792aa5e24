// File: services/submission_service.go
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

// SolveNotifier is told about every correct submission.
type SolveNotifier interface {
	NotifySolve(ev models.SolveEvent)
}

// SubmissionResult is returned for a correct flag.
type SubmissionResult struct {
	ChallengeID int64 `json:"challengeId"`
	Correct     bool  `json:"correct"`
	Points      int   `json:"points"`
}

// SubmissionServiceInterface checks flags.
type SubmissionServiceInterface interface {
	Submit(ctx context.Context, userID, challengeID int64, flag string) (SubmissionResult, error)
}

var _ SubmissionServiceInterface = (*SubmissionService)(nil)

// SubmissionService records attempts and scores correct flags.
type SubmissionService struct {
	submissions SubmissionRepository
	challenges  ChallengeRepository
	teams       TeamRepository
	phase       PhaseSource
	notifier    SolveNotifier
}

// NewSubmissionService wires the service. notifier may be nil.
func NewSubmissionService(submissions SubmissionRepository, challenges ChallengeRepository, teams TeamRepository, phase PhaseSource, notifier SolveNotifier) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		challenges:  challenges,
		teams:       teams,
		phase:       phase,
		notifier:    notifier,
	}
}

// flagsMatch compares in constant time. Flags are case and whitespace
// sensitive.
func flagsMatch(submitted, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1
}

// Submit checks a flag for the user's team. Every attempt is recorded; a
// wrong flag returns ErrIncorrectFlag after recording.
func (s *SubmissionService) Submit(ctx context.Context, userID, challengeID int64, flag string) (SubmissionResult, error) {
	if phase := s.phase.Phase(); !eventphase.CanSubmitFlag(phase) {
		return SubmissionResult{}, fmt.Errorf("submit: phase %s: %w", phase, models.ErrSubmissionsClosed)
	}
	if strings.TrimSpace(flag) == "" {
		return SubmissionResult{}, &models.FieldError{Field: "flag", Message: "flag is required"}
	}

	teamID, err := s.teams.TeamIDForUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return SubmissionResult{}, models.ErrNotInTeam
	}
	if err != nil {
		return SubmissionResult{}, err
	}

	challenge, err := s.challenges.ChallengeByID(ctx, challengeID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if !challenge.Visible {
		return SubmissionResult{}, fmt.Errorf("submit: challenge %d hidden: %w", challengeID, models.ErrNotFound)
	}

	solved, err := s.submissions.HasSolved(ctx, teamID, challengeID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if solved {
		return SubmissionResult{}, models.ErrAlreadySolved
	}

	correct := flagsMatch(flag, challenge.Flag)
	sub, err := s.submissions.RecordSubmission(ctx, models.Submission{
		UserID:        userID,
		TeamID:        teamID,
		ChallengeID:   challengeID,
		SubmittedFlag: flag,
		Correct:       correct,
	})
	if err != nil {
		logger.Warn.Printf("[SubmissionService.Submit] team %d challenge %d: %v", teamID, challengeID, err)
		return SubmissionResult{}, err
	}

	if !correct {
		logger.Info.Printf("[SubmissionService.Submit] team %d wrong flag for challenge %d", teamID, challengeID)
		return SubmissionResult{ChallengeID: challengeID}, models.ErrIncorrectFlag
	}

	logger.Info.Printf("[SubmissionService.Submit] team %d solved challenge %d (+%d)", teamID, challengeID, challenge.Points)
	s.notify(ctx, teamID, challenge, sub)
	return SubmissionResult{ChallengeID: challengeID, Correct: true, Points: challenge.Points}, nil
}

func (s *SubmissionService) notify(ctx context.Context, teamID int64, challenge models.Challenge, sub models.Submission) {
	if s.notifier == nil {
		return
	}
	ev := models.SolveEvent{
		TeamID:         teamID,
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		Points:         challenge.Points,
		SolvedAt:       sub.CreatedAt,
	}
	if team, err := s.teams.TeamByID(ctx, teamID); err == nil {
		ev.TeamName = team.Name
	}
	s.notifier.NotifySolve(ev)
}
