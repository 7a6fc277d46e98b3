package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	ErrorEmoji   = Error.Sprint("❌")
)

// SmartSpinner is a spinner that can log above itself without garbling output
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + MateEmoji + " " + msg
}

// Log pauses the spinner, prints the line and resumes
func (s *SmartSpinner) Log(msg string) {
	s.spinner.Stop()
	fmt.Println(Dim.Sprint(msg))
	s.spinner.Start()
}

// Success stops the spinner with a success message
func (s *SmartSpinner) Success(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", SuccessEmoji, msg)
}

// Warn stops the spinner with a warning message
func (s *SmartSpinner) Warn(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", WarningEmoji, msg)
}

// Error stops the spinner with an error message
func (s *SmartSpinner) Error(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", ErrorEmoji, msg)
}
