package ui

import (
	"strings"

	"fakenews-detector/internal/clients"
	"fakenews-detector/internal/models"
)

// BackendUnavailableMessage is shown when the backend could not be reached
const BackendUnavailableMessage = "Failed to analyze. Please check if the backend server is running."

// Phase is the position of the form in its lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnalyzing
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnalyzing:
		return "analyzing"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the form's view state. Transitions:
//
//	Idle/Succeeded/Failed --Analyze--> Analyzing --result--> Succeeded
//	                                   Analyzing --error---> Failed
//	Idle/Succeeded/Failed --Clear----> Idle
//
// Clear while Analyzing only empties the text; the request keeps running.
type State struct {
	Text   string
	Phase  Phase
	Result *models.AnalysisResult
	Err    string
}

// SetText replaces the input text
func (s *State) SetText(text string) {
	s.Text = text
}

// InFlight reports whether an analysis is running
func (s *State) InFlight() bool {
	return s.Phase == PhaseAnalyzing
}

// CanAnalyze reports whether Analyze would start a request
func (s *State) CanAnalyze() bool {
	return !s.InFlight() && strings.TrimSpace(s.Text) != ""
}

// BeginAnalysis enters Analyzing and drops the previous outcome. It returns
// false, changing nothing, when the text is blank or a request is in flight.
func (s *State) BeginAnalysis() bool {
	if !s.CanAnalyze() {
		return false
	}
	s.Result = nil
	s.Err = ""
	s.Phase = PhaseAnalyzing
	return true
}

// Succeed stores the result of the running analysis
func (s *State) Succeed(result *models.AnalysisResult) {
	if s.Phase != PhaseAnalyzing {
		return
	}
	s.Result = result
	s.Err = ""
	s.Phase = PhaseSucceeded
}

// Fail stores a display-ready message for the running analysis. The text is kept.
func (s *State) Fail(message string) {
	if s.Phase != PhaseAnalyzing {
		return
	}
	s.Result = nil
	s.Err = message
	s.Phase = PhaseFailed
}

// Complete settles the running analysis from a client call's return values
func (s *State) Complete(result *models.AnalysisResult, err error) {
	if err != nil {
		s.Fail(ErrorMessage(err))
		return
	}
	s.Succeed(result)
}

// Clear resets the form
func (s *State) Clear() {
	s.Text = ""
	if s.Phase == PhaseAnalyzing {
		return
	}
	s.Result = nil
	s.Err = ""
	s.Phase = PhaseIdle
}

// ErrorMessage turns a client error into the text shown in the error banner
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if clients.IsConnectivityError(err) {
		return BackendUnavailableMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return BackendUnavailableMessage
}
