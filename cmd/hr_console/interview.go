package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/candidate"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run the candidate interview wizard",
	Long:  "Upload a CV, answer the generated interview questions one at a time with a 2-minute limit each, and finalize the session.",
	RunE:  runInterview,
}

var (
	interviewName  string
	interviewPhone string
	interviewEmail string
	interviewCV    string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewName, "name", "", "Candidate full name")
	interviewCmd.Flags().StringVar(&interviewPhone, "phone", "", "Candidate phone number")
	interviewCmd.Flags().StringVar(&interviewEmail, "email", "", "Candidate email address")
	interviewCmd.Flags().StringVar(&interviewCV, "cv", "", "Path to the CV file (PDF/DOCX)")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	locale := consoleLocale()
	t := i18n.Candidate(locale)
	flow := candidate.NewFlow(newClient(), locale)
	ctx := context.Background()

	if interviewCV != "" {
		fmt.Printf("%s%s\n", t.FileChosen, filepath.Base(interviewCV))
	} else {
		fmt.Println(t.NoFile)
	}
	fmt.Println(t.Loading)

	err := flow.Start(ctx, types.StartForm{
		Name:   interviewName,
		Phone:  interviewPhone,
		Email:  interviewEmail,
		CVPath: interviewCV,
	})
	if err != nil {
		return err
	}

	lines := readLines(os.Stdin)

	for {
		q, ok := flow.CurrentQuestion()
		if !ok {
			break
		}
		fmt.Printf("\nQ%d/%d: %s\n", flow.Index()+1, len(flow.Questions()), q.Text)
		fmt.Printf("%s\n", t.AnswerPrompt)

		answer, timedOut := awaitAnswer(lines, t, os.Stdout)
		if err := flow.Submit(ctx, answer, timedOut); err != nil {
			// Transport failure: the question is still current, ask again.
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		}
	}

	fmt.Printf("\n%s\n", t.LoadingFinal)
	flow.Finish(ctx)

	fmt.Printf("\n%s\n%s\n", t.FinalTitle, t.FinalMsg)
	return nil
}

// readLines pumps stdin lines into a channel so the answer wait can race the
// countdown ticker. The channel closes on EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return lines
}

// awaitAnswer waits for an answer line or the countdown's expiry, whichever
// comes first. Empty manual answers are rejected without resetting the timer.
// The ticker is stopped before returning, so exactly one submission follows.
func awaitAnswer(lines <-chan string, t i18n.CandidateStrings, out io.Writer) (answer string, timedOut bool) {
	countdown := candidate.NewCountdown(candidate.QuestionSeconds)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Fprintf(out, "%s: %s\r", t.TimeRemaining, countdown.Display())
	for {
		select {
		case line, open := <-lines:
			if !open {
				// Stdin closed; treat like a timeout so the flow can finish.
				return "", true
			}
			if strings.TrimSpace(line) == "" {
				fmt.Fprintf(out, "%s\n", t.ErrEmptyAns)
				continue
			}
			return line, false
		case <-ticker.C:
			_, expired := countdown.Tick()
			fmt.Fprintf(out, "%s: %s\r", t.TimeRemaining, countdown.Display())
			if expired {
				fmt.Fprintln(out)
				return "", true
			}
		}
	}
}
