package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spacesedan/introscore/internal/feedback"
	"github.com/spacesedan/introscore/internal/models"
	"github.com/spacesedan/introscore/internal/sentiment"
)

func render(w io.Writer, transcript string, res models.ScoreResult) {
	fmt.Fprintf(w, "Overall Score: %d / 100 (%s)\n", res.TotalScore, feedback.OverallLabel(res.TotalScore))

	tone, toneLabel := sentiment.Tone(transcript)
	fmt.Fprintf(w, "Words: %d   Sentences: %d   WPM: %.1f   Tone: %s (%.2f)\n\n",
		res.Stats.TotalWords, res.Stats.SentenceCount, res.WPM, toneLabel, tone)

	fmt.Fprintln(w, "Detailed Breakdown")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tMetric\tScore\tMax\tSemantic sim (0-1)")
	for _, row := range feedback.Breakdown(res) {
		semCol := ""
		if row.HasSemantic {
			semCol = fmt.Sprintf("%.3f", row.Semantic)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", row.Category, row.Metric, row.Score, row.Max, semCol)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nSemantic Similarity Summary")
	fmt.Fprintf(w, "- Content & structure match: %.3f\n", res.Semantic.Content)
	fmt.Fprintf(w, "- Language quality match:    %.3f\n", res.Semantic.Language)
	fmt.Fprintf(w, "- Clarity match:             %.3f\n", res.Semantic.Clarity)
	fmt.Fprintf(w, "- Engagement match:          %.3f\n", res.Semantic.Engagement)

	fmt.Fprintln(w, "\nContent Coverage (Keywords)")
	fmt.Fprintln(w, "Present:")
	if len(res.PresentKeywords) == 0 {
		fmt.Fprintln(w, "  None detected.")
	}
	for _, p := range res.PresentKeywords {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	fmt.Fprintln(w, "Missing or weak:")
	if len(res.MissingKeywords) == 0 {
		fmt.Fprintln(w, "  All key areas covered!")
	}
	for _, m := range res.MissingKeywords {
		fmt.Fprintf(w, "  - %s\n", m)
	}

	strengths, improvements := feedback.Narrative(res)
	fmt.Fprintln(w, "\nFeedback Summary")
	fmt.Fprintln(w, "Strengths:")
	for _, s := range strengths {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintln(w, "Areas for improvement:")
	for _, s := range improvements {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
