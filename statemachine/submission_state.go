package statemachine

import (
	"fmt"
	"strings"

	"suite46-pickup/models"
)

// Transition is an allowed move of a storefront session's submission state
type Transition struct {
	From models.SubmissionState `json:"from"`
	To   models.SubmissionState `json:"to"`
}

// validTransitions is the authoritative submission lifecycle
var validTransitions = []Transition{
	// a new attempt can start from rest or after any finished attempt
	{From: models.SubmissionIdle, To: models.SubmissionValidating},
	{From: models.SubmissionCompleted, To: models.SubmissionValidating},
	{From: models.SubmissionFailed, To: models.SubmissionValidating},
	{From: models.SubmissionRedirected, To: models.SubmissionValidating},
	// validation failure puts the session back where it was
	{From: models.SubmissionValidating, To: models.SubmissionIdle},
	{From: models.SubmissionValidating, To: models.SubmissionCompleted},
	{From: models.SubmissionValidating, To: models.SubmissionFailed},
	{From: models.SubmissionValidating, To: models.SubmissionRedirected},
	{From: models.SubmissionValidating, To: models.SubmissionSubmitting},
	// network outcome
	{From: models.SubmissionSubmitting, To: models.SubmissionCompleted},
	{From: models.SubmissionSubmitting, To: models.SubmissionFailed},
	{From: models.SubmissionSubmitting, To: models.SubmissionRedirected},
}

type transitionKey struct {
	From models.SubmissionState
	To   models.SubmissionState
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(state models.SubmissionState) []models.SubmissionState {
	var nexts []models.SubmissionState
	for _, t := range validTransitions {
		if t.From == state {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether from → to is allowed
func CanTransition(from, to models.SubmissionState) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s. Valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(state models.SubmissionState) string {
	nexts := ValidTransitionsFrom(state)
	if len(nexts) == 0 {
		return "none"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
